// Package files implements the file storage service on top of an S3-compatible bucket.
//
// Files are addressed by a folder and a name. The folder is one of a fixed
// vocabulary (packages, package-backups, uploads, downloads) and decides the
// content type objects are stored with. Keys are built as prefix/folder/name.
//
// # Operations
//
//   - Exists: false only when the backend reports the object missing.
//   - Get / CreateDownloadResult: open a stream the caller must close.
//   - GetReference: conditional read returning a NotModifiedReference or a ModifiedReference.
//   - Save: upload with the folder's content type, optionally refusing to overwrite.
//   - Delete: remove, treating a missing object as success.
//   - IsAvailable: bucket reachability, never an error.
//
// Blank folder or file names fail with ErrInvalidArgument before any request is made.
//
// # HTTP Endpoints
//
//   - GET /files/{folder}/{name} : download (supports If-None-Match).
//   - HEAD /files/{folder}/{name} : existence check.
//   - PUT /files/{folder}/{name} : upload (supports ?overwrite=false).
//   - DELETE /files/{folder}/{name} : delete.
//   - GET /health : storage availability.
package files
