// Package client talks to the skillfit backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     authentication, resume analysis, scan history, the course catalogue and
//     the admin roster.
//  2. A concrete REST implementation (see HTTPClient) that attaches the bearer
//     credential to authorized calls and maps HTTP failures to errors.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. A non-2xx answer is a *ServiceError
// carrying the backend's detail message; 401 additionally matches
// ErrUnauthorized. Bodies that do not decode into the expected shape wrap
// ErrMalformedResponse. ErrorMessage turns any of these into text for the user.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
