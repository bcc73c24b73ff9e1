package repositories

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an insert violates the email
	// unique constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
