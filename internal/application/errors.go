package application

import "errors"

// Service-level error taxonomy. Handlers translate these into HTTP
// statuses; anything else is reported as a server error with its
// cause text attached for diagnostics.
var (
	// ErrValidation means the request input was malformed or missing.
	ErrValidation = errors.New("invalid input")
	// ErrEmailTaken means the email uniqueness invariant was violated.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the email or the password was the mismatched element.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEventNotFound      = errors.New("event not found")
)
