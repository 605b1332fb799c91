// Package api contains the HTTP pipeline shared by every resource service.
//
// # Overview
//
// The package provides:
//  1. A configured Client with a fixed base URL, default JSON headers, and a
//     30-second request timeout, exposing Get/Post/Put/Delete/PostForm.
//  2. A RoundTripper (authTransport) that reads the bearer token from the
//     credential store before each request, and on any 401 response purges
//     the store and fires the auth-lost callback exactly once. It never
//     retries the original request.
//  3. A multipart form builder (Form) with a _method override for updates
//     that carry a file.
//
// # Error Handling
//
// Transport and backend failures map onto sentinel errors callers can match
// with errors.Is (ErrUnreachable, ErrTimeout, ErrUnauthorized,
// ErrBadResponse) and two structured types: *ValidationError for 422
// field-level failures and *APIError for everything else.
//
// Concurrency & Contexts
//
// A Client is safe for concurrent use. All operations accept
// context.Context and honor cancellation; independently issued requests may
// resolve in any order.
package api
