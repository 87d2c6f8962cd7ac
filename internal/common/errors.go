// Package common defines sentinel errors shared by the admin client and the
// reference backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrForbiddenRole is returned when an authenticated account lacks the
	// admin role.
	ErrForbiddenRole = errors.New("admin role required")

	// Local precondition errors, raised before any network call.
	ErrMissingID     = errors.New("entity id is required")
	ErrNoProfile     = errors.New("no profile loaded")
	// ErrProfileExists guards the single profile slot.
	ErrProfileExists = errors.New("profile already exists")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
