package storage_test

import (
	"errors"
	"testing"
	"time"

	"file-storage/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("StaticWithRegion", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.NoError(t, client.Close())
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("AmbientCredentials", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint: "https://s3.amazonaws.com",
			UseSSL:   true,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		cfg        storage.Config
		want       storage.Strategy
		wantKey    string
		wantSecret string
		wantRegion string
	}{
		{"KeySecretRegion", storage.Config{AccessKey: "ak", SecretKey: "sk", Region: "eu-west-1"}, storage.StrategyStaticRegion, "ak", "sk", "eu-west-1"},
		{"KeySecret", storage.Config{AccessKey: "ak", SecretKey: "sk"}, storage.StrategyStatic, "ak", "sk", ""},
		{"RegionOnly", storage.Config{Region: "eu-west-1"}, storage.StrategyAmbientRegion, "", "", "eu-west-1"},
		{"Nothing", storage.Config{}, storage.StrategyAmbient, "", "", ""},
		{"KeyOnly", storage.Config{AccessKey: "ak"}, storage.StrategyAmbient, "", "", ""},
		{"SecretOnly", storage.Config{SecretKey: "sk"}, storage.StrategyAmbient, "", "", ""},
		{"KeyAndRegion", storage.Config{AccessKey: "ak", Region: "eu-west-1"}, storage.StrategyAmbientRegion, "", "", "eu-west-1"},
		{"SecretAndRegion", storage.Config{SecretKey: "sk", Region: "eu-west-1"}, storage.StrategyAmbientRegion, "", "", "eu-west-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storage.Resolve(tt.cfg)
			assert.Equal(t, tt.want, s.Strategy)
			assert.Equal(t, tt.wantKey, s.AccessKey)
			assert.Equal(t, tt.wantSecret, s.SecretKey)
			assert.Equal(t, tt.wantRegion, s.Region)
		})
	}
}

func TestResolve_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Resolve(storage.Config{}).Timeout)
	assert.Equal(t, 5*time.Second, storage.Resolve(storage.Config{TimeoutSeconds: 5}).Timeout)
}

func TestFactory_NewClient(t *testing.T) {
	t.Run("PassesResolvedSettings", func(t *testing.T) {
		var recorded []storage.Settings
		factory := storage.NewFactory(
			storage.Config{Endpoint: "minio:9000", AccessKey: "ak", SecretKey: "sk", Region: "us-west-2", Bucket: "b"},
			storage.WithConstructor(func(s storage.Settings) (storage.Client, error) {
				recorded = append(recorded, s)
				return nil, nil
			}),
		)

		_, err := factory.NewClient()
		require.NoError(t, err)
		_, err = factory.NewClient()
		require.NoError(t, err)

		require.Len(t, recorded, 2)
		assert.Equal(t, storage.StrategyStaticRegion, recorded[0].Strategy)
		assert.Equal(t, "minio:9000", recorded[0].Endpoint)
		assert.Equal(t, recorded[0], recorded[1])
		assert.Same(t, recorded[0].Transport, recorded[1].Transport)
	})

	t.Run("EveryStrategy", func(t *testing.T) {
		tests := []struct {
			name string
			cfg  storage.Config
			want storage.Settings
		}{
			{"StaticWithRegion", storage.Config{AccessKey: "ak", SecretKey: "sk", Region: "eu-west-1"},
				storage.Settings{Strategy: storage.StrategyStaticRegion, AccessKey: "ak", SecretKey: "sk", Region: "eu-west-1"}},
			{"Static", storage.Config{AccessKey: "ak", SecretKey: "sk"},
				storage.Settings{Strategy: storage.StrategyStatic, AccessKey: "ak", SecretKey: "sk"}},
			{"AmbientWithRegion", storage.Config{SecretKey: "sk", Region: "eu-west-1"},
				storage.Settings{Strategy: storage.StrategyAmbientRegion, Region: "eu-west-1"}},
			{"Ambient", storage.Config{AccessKey: "ak"},
				storage.Settings{Strategy: storage.StrategyAmbient}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var recorded storage.Settings
				factory := storage.NewFactory(tt.cfg, storage.WithConstructor(func(s storage.Settings) (storage.Client, error) {
					recorded = s
					return nil, nil
				}))

				_, err := factory.NewClient()
				require.NoError(t, err)

				require.NotNil(t, recorded.Transport)
				assert.Equal(t, tt.want.Strategy, recorded.Strategy)
				assert.Equal(t, tt.want.AccessKey, recorded.AccessKey)
				assert.Equal(t, tt.want.SecretKey, recorded.SecretKey)
				assert.Equal(t, tt.want.Region, recorded.Region)
			})
		}
	})

	t.Run("ConstructorError", func(t *testing.T) {
		factory := storage.NewFactory(storage.Config{}, storage.WithConstructor(func(storage.Settings) (storage.Client, error) {
			return nil, errors.New("boom")
		}))

		client, err := factory.NewClient()
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "static+region", storage.StrategyStaticRegion.String())
	assert.Equal(t, "static", storage.StrategyStatic.String())
	assert.Equal(t, "ambient+region", storage.StrategyAmbientRegion.String())
	assert.Equal(t, "ambient", storage.StrategyAmbient.String())
	assert.True(t, storage.StrategyStatic.Static())
	assert.False(t, storage.StrategyAmbientRegion.Static())
}

func TestConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, storage.Config{}.Validate(), storage.ErrBucketRequired)
	assert.ErrorIs(t, storage.Config{Bucket: "   "}.Validate(), storage.ErrBucketRequired)
	assert.NoError(t, storage.Config{Bucket: "packages"}.Validate())
}
