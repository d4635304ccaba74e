package files

import (
	"fmt"
	"path"
	"strings"
)

// Folder names understood by the service.
const (
	PackagesFolder       = "packages"
	PackageBackupsFolder = "package-backups"
	UploadsFolder        = "uploads"
	DownloadsFolder      = "downloads"
)

// Content types stored alongside objects.
const (
	PackageContentType     = "binary/octet-stream"
	OctetStreamContentType = "application/octet-stream"
)

// ContentType returns the content type stored for files in folder.
// Folders outside the fixed vocabulary fail with ErrUnsupportedFolder.
func ContentType(folder string) (string, error) {
	switch folder {
	case PackagesFolder, PackageBackupsFolder, UploadsFolder:
		return PackageContentType, nil
	case DownloadsFolder:
		return OctetStreamContentType, nil
	default:
		return "", fmt.Errorf("%w: the folder name %s is not supported", ErrUnsupportedFolder, folder)
	}
}

// BuildPath joins prefix, folder and name into an object key.
// Keys always use forward slashes and never start with one.
func BuildPath(prefix, folder, name string) string {
	parts := make([]string, 0, 3)
	if p := toSlash(prefix); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, toSlash(folder), toSlash(name))
	return strings.TrimPrefix(path.Join(parts...), "/")
}

func toSlash(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}

// validatePart rejects location parts that would move the key out of its
// prefix or folder: blank values, a leading slash, and empty, "." or ".."
// segments. Backslashes count as separators.
func validatePart(kind, s string) error {
	if strings.TrimSpace(s) == "" {
		return invalidArgument("%s is required", kind)
	}

	p := toSlash(s)
	if strings.HasPrefix(p, "/") {
		return invalidArgument("%s %q must not start with a slash", kind, s)
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".", "..":
			return invalidArgument("%s %q has an empty or relative segment", kind, s)
		}
	}
	return nil
}
