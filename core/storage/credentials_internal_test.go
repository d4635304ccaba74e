package storage

import (
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "env-key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "env-secret")

	tests := []struct {
		name       string
		cfg        Config
		wantKey    string
		wantSigner credentials.SignatureType
	}{
		{"StaticWithRegion", Config{AccessKey: "ak", SecretKey: "sk", Region: "eu-west-1"}, "ak", credentials.SignatureV4},
		{"Static", Config{AccessKey: "ak", SecretKey: "sk"}, "ak", credentials.SignatureV4},
		{"AmbientWithRegion", Config{AccessKey: "ak", Region: "eu-west-1"}, "env-key", credentials.SignatureV4},
		{"Ambient", Config{SecretKey: "sk"}, "env-key", credentials.SignatureV4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := newCredentials(Resolve(tt.cfg), http.DefaultTransport)

			v, err := creds.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, v.AccessKeyID)
			assert.Equal(t, tt.wantSigner, v.SignerType)
		})
	}
}
