package storage

import (
	"errors"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// Status is the backend outcome classes the file service distinguishes.
type Status int

const (
	StatusOK Status = iota
	StatusNotModified
	StatusNotFound
	StatusOther
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotModified:
		return "not_modified"
	case StatusNotFound:
		return "not_found"
	default:
		return "other"
	}
}

// StatusOf classifies an error returned by a Client call.
// A missing bucket is a configuration fault, not a missing object.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}

	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return StatusOther
	}

	switch {
	case resp.StatusCode == http.StatusNotModified || resp.Code == "NotModified":
		return StatusNotModified
	case resp.Code == "NoSuchBucket":
		return StatusOther
	case resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey" || resp.Code == "NotFound":
		return StatusNotFound
	default:
		return StatusOther
	}
}
