package service

import "errors"

// Sentinel errors controllers translate into HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrAlreadySubmitted   = errors.New("attempt already submitted")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
