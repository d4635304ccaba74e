package files

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a caller contract violation. Never reaches the backend.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound means the backend reported the object missing.
	ErrNotFound = errors.New("file not found")
	// ErrUnsupportedFolder means the folder has no content type mapping.
	ErrUnsupportedFolder = errors.New("unsupported folder")
	// ErrAlreadyExists is returned by Save without overwrite when the object is present.
	ErrAlreadyExists = errors.New("file already exists")
	// ErrBackend wraps every other backend or transport failure.
	ErrBackend = errors.New("storage backend error")
	// ErrInvalidState is returned when reading a reference that has no content.
	ErrInvalidState = errors.New("reference has no content")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func backendError(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrBackend, op, key, err)
}
