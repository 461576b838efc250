// Package common defines sentinel errors and constants shared by the server,
// the HTTP transport and the API client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Account errors.
	ErrIdentityTaken      = errors.New("identity already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (missing, invalid or malformed token).
	ErrTokenMissing = errors.New("token missing")
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Post errors. Missing posts and posts owned by someone else are
	// reported the same way.
	ErrNotFoundOrNotOwner = errors.New("post not found")
)
