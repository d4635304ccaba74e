package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"file-storage/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want storage.Status
	}{
		{"Nil", nil, storage.StatusOK},
		{"NotModified", minio.ErrorResponse{StatusCode: 304, Code: "304 Not Modified"}, storage.StatusNotModified},
		{"NoSuchKey", minio.ErrorResponse{StatusCode: 404, Code: "NoSuchKey"}, storage.StatusNotFound},
		{"HeadNotFound", minio.ErrorResponse{StatusCode: 404, Code: "NotFound"}, storage.StatusNotFound},
		{"WrappedNotFound", fmt.Errorf("stat: %w", minio.ErrorResponse{StatusCode: 404, Code: "NoSuchKey"}), storage.StatusNotFound},
		{"NoSuchBucket", minio.ErrorResponse{StatusCode: 404, Code: "NoSuchBucket"}, storage.StatusOther},
		{"AccessDenied", minio.ErrorResponse{StatusCode: 403, Code: "AccessDenied"}, storage.StatusOther},
		{"Transport", errors.New("connection refused"), storage.StatusOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.StatusOf(tt.err))
		})
	}
}
