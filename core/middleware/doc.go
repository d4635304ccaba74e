// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation to protect the file endpoints.
//   - RayID: a unique Request ID (RayID) for every incoming request,
//     stored in the context and echoed in the response headers for tracing.
//
// RayID must be registered first so every later log line can carry it.
package middleware
