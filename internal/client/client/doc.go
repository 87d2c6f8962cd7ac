// Package client talks to the portfolio REST API.
//
// Client is the transport-agnostic contract, one method per resource and
// operation. HTTPClient implements it over JSON: every response body is the
// {message, code, data} envelope and success is decided by the HTTP status
// alone. Authenticated calls read the bearer token from a TokenSource at call
// time.
//
// Errors: non-2xx answers are *HTTPError; transport failures wrap
// ErrUnavailable; 401 and 403 match ErrUnauthorized with errors.Is.
//
// The package also bootstraps the local SQLite session database
// (InitDatabase, RunMigrations).
package client
