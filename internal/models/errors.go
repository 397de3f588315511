package models

import "errors"

var (
	// store errors
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// request validation
	ErrValidation = errors.New("validation error")

	// credential checks
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("password incorrect")
)

// ValidationError is a rejected input whose Message is safe to show the
// client. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
