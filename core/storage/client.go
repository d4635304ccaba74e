package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Object is a lazily opened object stream. *minio.Object satisfies it.
type Object interface {
	io.ReadCloser
	// Stat issues the request (if not yet sent) and returns the object metadata.
	Stat() (minio.ObjectInfo, error)
}

// Client defines the subset of object storage operations the file service needs.
type Client interface {
	// GetObject opens an object for reading. Errors surface on the first Stat or Read.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (Object, error)
	// StatObject fetches object metadata without the body.
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	// PutObject uploads an object. objectSize -1 streams content of unknown length.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// Close releases connections held by the client.
	Close() error
}

// ClientFactory yields a fresh client for each operation.
type ClientFactory interface {
	NewClient() (Client, error)
}

// Constructor builds a client from a resolved construction plan.
type Constructor func(Settings) (Client, error)

// Factory resolves the configured credential strategy and builds clients with it.
// Clients built by one Factory share a single HTTP transport.
type Factory struct {
	cfg       Config
	construct Constructor
	transport *http.Transport
}

// FactoryOption customizes a Factory.
type FactoryOption func(*Factory)

// WithConstructor replaces the minio constructor, mostly for tests.
func WithConstructor(c Constructor) FactoryOption {
	return func(f *Factory) {
		f.construct = c
	}
}

// NewFactory creates a factory for the given configuration.
func NewFactory(cfg Config, opts ...FactoryOption) *Factory {
	f := &Factory{
		cfg:       cfg,
		construct: newMinioClient,
		transport: newTransport(Resolve(cfg).Timeout),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewClient builds a client using the configured credential strategy.
func (f *Factory) NewClient() (Client, error) {
	s := Resolve(f.cfg)
	s.Transport = f.transport
	return f.construct(s)
}

// Close drops the idle connections of the shared transport.
func (f *Factory) Close() {
	f.transport.CloseIdleConnections()
}

// NewClient creates a standalone Minio client with its own transport.
// Closing it drops that transport's idle connections.
func NewClient(cfg Config) (Client, error) {
	return newMinioClient(Resolve(cfg))
}

func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
}

// newCredentials returns static V4 credentials for static strategies and the
// ambient chain (env AWS, env MinIO, shared credentials file, IAM) otherwise.
func newCredentials(s Settings, transport http.RoundTripper) *credentials.Credentials {
	if s.Strategy.Static() {
		return credentials.NewStaticV4(s.AccessKey, s.SecretKey, "")
	}
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvAWS{},
		&credentials.EnvMinio{},
		&credentials.FileAWSCredentials{},
		&credentials.IAM{Client: &http.Client{Transport: transport}},
	})
}

func newMinioClient(s Settings) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(s.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	transport, owned := s.Transport, false
	if transport == nil {
		transport, owned = newTransport(s.Timeout), true
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     newCredentials(s, transport),
		Secure:    s.UseSSL,
		Region:    s.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioClientWrapper{Client: minioClient, transport: transport, owned: owned}, nil
}

type minioClientWrapper struct {
	*minio.Client
	transport *http.Transport
	owned     bool
}

func (c *minioClientWrapper) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (Object, error) {
	obj, err := c.Client.GetObject(ctx, bucketName, objectName, opts)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Close drops idle connections of a transport the client owns. A shared
// transport stays with its Factory. Streams already handed out keep their connection.
func (c *minioClientWrapper) Close() error {
	if c.owned {
		c.transport.CloseIdleConnections()
	}
	return nil
}
