package domain

import "errors"

var (
	// ErrNotFound is returned when a record id is absent from its collection.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned by user creation when the username is
	// already in use.
	ErrUsernameTaken = errors.New("username already exists")
)
