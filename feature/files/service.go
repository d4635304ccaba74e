package files

import (
	"context"
	"fmt"
	"io"

	"file-storage/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DownloadResult is a stream ready to be served, with the stored content type.
// The caller owns Body and must close it.
type DownloadResult struct {
	Body        io.ReadCloser
	ContentType string
	ContentID   string
}

// Service stores and retrieves files in the configured bucket.
// It holds no client between calls; every operation builds its own through the factory.
type Service struct {
	factory storage.ClientFactory
	bucket  string
	prefix  string
	logger  *zap.Logger
}

// NewService creates a new file storage service.
func NewService(factory storage.ClientFactory, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		factory: factory,
		bucket:  bucket,
		prefix:  prefix,
		logger:  logger,
	}
}

// Exists reports whether the file is present. Only a not-found answer yields
// false; every other backend failure is returned as ErrBackend.
func (s *Service) Exists(ctx context.Context, folder, name string) (bool, error) {
	key, err := s.key(folder, name)
	if err != nil {
		return false, err
	}

	client, err := s.client()
	if err != nil {
		return false, err
	}
	defer client.Close()

	_, err = client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	switch storage.StatusOf(err) {
	case storage.StatusOK:
		return true, nil
	case storage.StatusNotFound:
		return false, nil
	default:
		s.logger.Warn("Existence check failed", zap.String("key", key), zap.Error(err))
		return false, backendError("stat", key, err)
	}
}

// Get opens the file for reading. The caller owns the returned stream.
func (s *Service) Get(ctx context.Context, folder, name string) (io.ReadCloser, error) {
	key, err := s.key(folder, name)
	if err != nil {
		return nil, err
	}

	obj, _, err := s.open(ctx, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// CreateDownloadResult opens the file together with the content type it was stored with.
func (s *Service) CreateDownloadResult(ctx context.Context, folder, name string) (*DownloadResult, error) {
	key, err := s.key(folder, name)
	if err != nil {
		return nil, err
	}

	obj, info, err := s.open(ctx, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	return &DownloadResult{Body: obj, ContentType: storedContentType(info, folder), ContentID: info.ETag}, nil
}

// GetReference performs a conditional read. With a matching ifNoneMatch the
// result is a NotModifiedReference carrying ifNoneMatch unchanged; otherwise a
// ModifiedReference with the fresh stream and ETag. A missing file yields a nil
// reference and a nil error.
func (s *Service) GetReference(ctx context.Context, folder, name, ifNoneMatch string) (FileReference, error) {
	key, err := s.key(folder, name)
	if err != nil {
		return nil, err
	}

	opts := minio.GetObjectOptions{}
	if ifNoneMatch != "" {
		if err := opts.SetMatchETagExcept(ifNoneMatch); err != nil {
			return nil, invalidArgument("if-none-match: %v", err)
		}
	}

	client, err := s.client()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	obj, err := client.GetObject(ctx, s.bucket, key, opts)
	if err != nil {
		return s.reference(key, ifNoneMatch, err)
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return s.reference(key, ifNoneMatch, err)
	}

	s.logger.Debug("Serving modified file", zap.String("key", key), zap.String("etag", info.ETag))
	return Modified(obj, info.ETag).WithContentType(storedContentType(info, folder)), nil
}

// reference translates a failed conditional read.
func (s *Service) reference(key, ifNoneMatch string, err error) (FileReference, error) {
	switch storage.StatusOf(err) {
	case storage.StatusNotModified:
		return NotModified(ifNoneMatch), nil
	case storage.StatusNotFound:
		return nil, nil
	default:
		s.logger.Warn("Conditional read failed", zap.String("key", key), zap.Error(err))
		return nil, backendError("get", key, err)
	}
}

// Save uploads content. The stored content type is derived from folder, so an
// unknown folder fails before any request is sent. With overwrite false an
// existing file fails with ErrAlreadyExists.
func (s *Service) Save(ctx context.Context, folder, name string, content io.Reader, overwrite bool) error {
	key, err := s.key(folder, name)
	if err != nil {
		return err
	}
	if content == nil {
		return invalidArgument("content is required")
	}

	contentType, err := ContentType(folder)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return err
	}
	defer client.Close()

	if !overwrite {
		_, err := client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
		switch storage.StatusOf(err) {
		case storage.StatusOK:
			return fmt.Errorf("%w: %s", ErrAlreadyExists, key)
		case storage.StatusNotFound:
		default:
			return backendError("stat", key, err)
		}
	}

	info, err := client.PutObject(ctx, s.bucket, key, content, objectSize(content), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.Warn("Upload failed", zap.String("key", key), zap.Error(err))
		return backendError("put", key, err)
	}

	s.logger.Debug("Saved file", zap.String("key", key), zap.Int64("size", info.Size), zap.String("etag", info.ETag))
	return nil
}

// Delete removes the file. Deleting a missing file succeeds.
func (s *Service) Delete(ctx context.Context, folder, name string) error {
	key, err := s.key(folder, name)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	switch storage.StatusOf(err) {
	case storage.StatusOK, storage.StatusNotFound:
		return nil
	default:
		s.logger.Warn("Delete failed", zap.String("key", key), zap.Error(err))
		return backendError("delete", key, err)
	}
}

// IsAvailable reports whether the bucket is reachable. It never fails.
func (s *Service) IsAvailable(ctx context.Context) bool {
	client, err := s.client()
	if err != nil {
		return false
	}
	defer client.Close()

	ok, err := client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Warn("Storage health check failed", zap.String("bucket", s.bucket), zap.Error(err))
		return false
	}
	return ok
}

// open gets an object and forces the request so a missing file is reported now
// rather than on the caller's first read.
func (s *Service) open(ctx context.Context, key string, opts minio.GetObjectOptions) (storage.Object, minio.ObjectInfo, error) {
	client, err := s.client()
	if err != nil {
		return nil, minio.ObjectInfo{}, err
	}
	defer client.Close()

	obj, err := client.GetObject(ctx, s.bucket, key, opts)
	if err != nil {
		return nil, minio.ObjectInfo{}, s.readError(key, err)
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, minio.ObjectInfo{}, s.readError(key, err)
	}

	return obj, info, nil
}

func (s *Service) readError(key string, err error) error {
	if storage.StatusOf(err) == storage.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	s.logger.Warn("Read failed", zap.String("key", key), zap.Error(err))
	return backendError("get", key, err)
}

func (s *Service) key(folder, name string) (string, error) {
	if err := validatePart("folder name", folder); err != nil {
		return "", err
	}
	if err := validatePart("file name", name); err != nil {
		return "", err
	}
	return BuildPath(s.prefix, folder, name), nil
}

func (s *Service) client() (storage.Client, error) {
	client, err := s.factory.NewClient()
	if err != nil {
		s.logger.Error("Failed to create storage client", zap.Error(err))
		return nil, backendError("connect", s.bucket, err)
	}
	return client, nil
}

// storedContentType prefers the type recorded on the object.
func storedContentType(info minio.ObjectInfo, folder string) string {
	if info.ContentType != "" {
		return info.ContentType
	}
	return fallbackContentType(folder)
}

func fallbackContentType(folder string) string {
	if ct, err := ContentType(folder); err == nil {
		return ct
	}
	return OctetStreamContentType
}

// objectSize returns the length of in-memory readers and -1 for streams.
func objectSize(r io.Reader) int64 {
	switch v := r.(type) {
	case interface{ Len() int }:
		return int64(v.Len())
	default:
		return -1
	}
}
