// Package common defines shared sentinel errors used across the
// application layers. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrEmailTaken = errors.New("email already taken")
	ErrSlugTaken  = errors.New("slug already taken")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid, expired, or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)
