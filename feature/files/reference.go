package files

import "io"

// FileReference is the outcome of a conditional read. It is either a
// NotModifiedReference or a ModifiedReference; no other implementations exist.
type FileReference interface {
	// ContentID is the backend identifier (ETag) of the content.
	ContentID() string
	// HasContent reports whether OpenRead yields a stream.
	HasContent() bool
	// OpenRead returns the content. Only valid when HasContent is true;
	// otherwise it fails with ErrInvalidState.
	OpenRead() (io.ReadCloser, error)

	fileReference()
}

// NotModifiedReference tells the caller its cached copy is still current.
type NotModifiedReference struct {
	contentID string
}

// NotModified builds a reference carrying only the content id.
func NotModified(contentID string) NotModifiedReference {
	return NotModifiedReference{contentID: contentID}
}

func (r NotModifiedReference) ContentID() string { return r.contentID }
func (r NotModifiedReference) HasContent() bool  { return false }

func (r NotModifiedReference) OpenRead() (io.ReadCloser, error) {
	return nil, ErrInvalidState
}

func (NotModifiedReference) fileReference() {}

// ModifiedReference carries fresh content and the id to cache for the next check.
// The caller owns the stream and must close it.
type ModifiedReference struct {
	contentID   string
	contentType string
	stream      io.ReadCloser
}

// Modified builds a reference holding stream and its content id.
func Modified(stream io.ReadCloser, contentID string) ModifiedReference {
	return ModifiedReference{contentID: contentID, stream: stream}
}

func (r ModifiedReference) ContentID() string { return r.contentID }
func (r ModifiedReference) HasContent() bool  { return true }

func (r ModifiedReference) OpenRead() (io.ReadCloser, error) {
	return r.stream, nil
}

// ContentType is the type the content was stored with, if known.
func (r ModifiedReference) ContentType() string { return r.contentType }

// WithContentType returns a copy of r carrying contentType.
func (r ModifiedReference) WithContentType(contentType string) ModifiedReference {
	r.contentType = contentType
	return r
}

func (ModifiedReference) fileReference() {}
