package files

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotModified(t *testing.T) {
	var ref FileReference = NotModified("etag-1")

	assert.Equal(t, "etag-1", ref.ContentID())
	assert.False(t, ref.HasContent())

	stream, err := ref.OpenRead()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Nil(t, stream)
}

func TestModified(t *testing.T) {
	var ref FileReference = Modified(io.NopCloser(strings.NewReader("content")), "etag-2")

	assert.Equal(t, "etag-2", ref.ContentID())
	assert.True(t, ref.HasContent())

	stream, err := ref.OpenRead()
	require.NoError(t, err)
	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestFileReference_TypeSwitch(t *testing.T) {
	refs := []FileReference{NotModified("a"), Modified(io.NopCloser(strings.NewReader("")), "b")}

	var kinds []string
	for _, ref := range refs {
		switch ref.(type) {
		case NotModifiedReference:
			kinds = append(kinds, "not_modified")
		case ModifiedReference:
			kinds = append(kinds, "modified")
		}
	}
	assert.Equal(t, []string{"not_modified", "modified"}, kinds)
}

func TestModified_ContentType(t *testing.T) {
	ref := Modified(io.NopCloser(strings.NewReader("")), "etag")
	assert.Empty(t, ref.ContentType())

	typed := ref.WithContentType(PackageContentType)
	assert.Equal(t, PackageContentType, typed.ContentType())
	assert.Equal(t, "etag", typed.ContentID())
	assert.Empty(t, ref.ContentType())
}
