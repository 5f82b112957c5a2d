package model

import "errors"

var (
	// ErrNotFound is returned when an entity is absent or not visible to the caller.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores when a uniqueness constraint rejects a write.
	ErrAlreadyExists = errors.New("already exists")

	ErrValidation         = errors.New("validation error")
	ErrEmailConflict      = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
)
