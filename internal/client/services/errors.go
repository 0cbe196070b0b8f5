package services

import "errors"

var (
	// ErrInvalidCredentials is the only way sign-in fails: no account in the
	// table matches both the email and the password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAuthRequired is returned by actions that need a signed-in session.
	// Callers are expected to start the sign-in flow when they see it.
	ErrAuthRequired = errors.New("authentication required")
)
