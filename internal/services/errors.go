package services

import "errors"

var (
	// ErrEmailAlreadyRegistered is returned when signup hits an existing email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLoanNotFound is returned for operations on an unknown loan id.
	ErrLoanNotFound = errors.New("loan not found")
)
