package cli

import "errors"

// ErrInvalidForm is returned when a form fails its client-side checks.
// The field messages have already been shown to the user.
var ErrInvalidForm = errors.New("invalid form")

// ErrCancelled is returned when the user backs out of a prompt.
var ErrCancelled = errors.New("cancelled")
