package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password so callers cannot probe which identifiers are registered.
	ErrInvalidCredentials = errors.New("incorrect email/employee id or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
