package domain

import "errors"

// Sentinel errors shared by the stores and the auth service, checked with
// errors.Is.
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	ErrNotFound           = errors.New("requested resource not found")
	ErrInvalidIdentity    = errors.New("session identity is missing an email")
)
