// Package storage provides the object storage client used by the file service.
//
// It wraps the MinIO Go client behind a narrow Client interface (get, stat, put,
// remove, bucket check) so the service layer can be tested with the mocks in
// core/storage/mocks. Both AWS S3 and self-hosted MinIO are supported.
//
// # Credential Strategy
//
// Resolve picks exactly one strategy for a configuration, first match wins:
//
//  1. access key + secret key + region
//  2. access key + secret key (region resolved by the backend)
//  3. region only (credentials from the environment, shared file or IAM)
//  4. nothing (credentials and region both discovered)
//
// # Status Translation
//
// StatusOf maps a client error onto the outcomes the service cares about:
// ok, not modified, not found, and everything else.
//
// # Usage
//
//	factory := storage.NewFactory(cfg.Storage)
//	client, err := factory.NewClient()
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package storage
