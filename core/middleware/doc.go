// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides the cross-cutting concerns that sit between a request and the
// feature handlers.
//
// # Components
//
//   - Auth: Validates the API key protecting the reconciliation and
//     inventory endpoints.
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally in the server startup, RayID first so every
// later log line carries the ID.
package middleware
