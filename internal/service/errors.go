package service

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError indicates a business-rule violation detected by a
// service before any persistence side effect, such as a payload that
// references a user that does not exist. It propagates unmodified to the
// transport boundary, which maps it to a client error.
type ValidationError struct {
	// Message is the human-readable rule violation.
	Message string

	// Err is an optional underlying cause.
	Err error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

// NewUserNotFoundValidation creates the ValidationError raised when a
// payload references a user that does not exist.
func NewUserNotFoundValidation(userID uuid.UUID) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("User with ID %s not found", userID),
	}
}
