// Package client is a typed HTTP client for the blog API.
//
// HTTPClient implements Client. Failures are reported with sentinel errors
// that callers match with errors.Is: ErrUnavailable, ErrUnauthorized,
// ErrNotFound, ErrConflict and ErrBadRequest. The server's error message is
// appended to the sentinel.
//
// Post operations need a session token, either passed with WithToken or
// stored by a successful Login.
package client
