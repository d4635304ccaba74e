package mocks

import (
	"context"
	"io"
	"strings"

	"file-storage/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (storage.Object, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	if obj, ok := args.Get(0).(storage.Object); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Get(0).(minio.ObjectInfo), args.Error(1)
}

func (m *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *Client) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Factory is a mock implementation of storage.ClientFactory
type Factory struct {
	mock.Mock
}

func (m *Factory) NewClient() (storage.Client, error) {
	args := m.Called()
	if c, ok := args.Get(0).(storage.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// Object is a mock implementation of storage.Object. Reads are served from Body.
type Object struct {
	mock.Mock
	Body io.Reader
}

// NewObject returns an Object whose Stat yields info and err, and whose Close may be called.
func NewObject(body string, info minio.ObjectInfo, err error) *Object {
	o := &Object{Body: strings.NewReader(body)}
	o.On("Stat").Return(info, err)
	o.On("Close").Return(nil).Maybe()
	return o
}

func (m *Object) Read(p []byte) (int, error) {
	if m.Body == nil {
		return 0, io.EOF
	}
	return m.Body.Read(p)
}

func (m *Object) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *Object) Stat() (minio.ObjectInfo, error) {
	args := m.Called()
	return args.Get(0).(minio.ObjectInfo), args.Error(1)
}
