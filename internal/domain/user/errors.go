package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrIdentifierExists = errors.New("email or employee id already registered")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
	ErrUserInactive     = errors.New("user account is inactive")
)
