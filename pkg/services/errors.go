package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every service. The API layer maps these onto
// HTTP status codes, so new service code should wrap one of them rather
// than invent a parallel sentinel.
var (
	ErrNotFound        = errors.New("record not found")
	ErrAlreadyExists   = errors.New("record already exists")
	ErrTerminalStatus  = errors.New("audit is in a terminal status")
	ErrCancelRequested = errors.New("audit cancellation requested")
)

// ValidationError reports a rejected request field. The field name is
// carried separately so callers can act on it without parsing the message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
