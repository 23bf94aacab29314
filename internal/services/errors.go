package services

import "errors"

var (
	// ErrMissingField indicates an empty required request field.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateEmail indicates a registration attempt with an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmptyText indicates a post creation attempt with no body.
	ErrEmptyText = errors.New("post text must not be empty")
)
