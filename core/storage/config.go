package storage

import (
	"errors"
	"strings"
)

// Config holds configuration for the object storage backend.
type Config struct {
	// Endpoint is the host of the S3-compatible service.
	Endpoint string `mapstructure:"endpoint" default:"s3.amazonaws.com"`
	// AccessKey is the access key ID. Empty means ambient credential discovery.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key. Empty means ambient credential discovery.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Bucket is the name of the bucket files are stored in.
	Bucket string `mapstructure:"bucket" default:""`
	// Prefix is prepended to every object key (optional).
	Prefix string `mapstructure:"prefix" default:""`
	// Region is the location of the bucket. Empty lets the backend resolve it.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and time to first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ErrBucketRequired is returned by Validate when no bucket is configured.
var ErrBucketRequired = errors.New("storage bucket is required")

// Validate checks the mandatory fields.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Bucket) == "" {
		return ErrBucketRequired
	}
	return nil
}

// HasStaticCredentials reports whether both halves of an explicit key pair are set.
func (c Config) HasStaticCredentials() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}
