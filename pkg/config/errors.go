package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML marks a config file that failed to parse at all.
	ErrInvalidYAML = errors.New("invalid YAML")

	// ErrValidationFailed wraps every settings rejection so callers can
	// match the whole class with a single errors.Is.
	ErrValidationFailed = errors.New("configuration validation failed")

	// ErrProviderNotFound names a provider id absent from the registry.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInvalidValue marks a field whose value is out of range or malformed.
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError locates a rejected configuration value by section, entry,
// and field. Unwrap exposes the sentinel so errors.Is still matches.
type ValidationError struct {
	Section string
	ID      string
	Field   string // empty when the entry as a whole is bad
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config %s/%s: %v", e.Section, e.ID, e.Err)
	}
	return fmt.Sprintf("config %s/%s: %s: %v", e.Section, e.ID, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError builds a ValidationError for the given location.
func NewValidationError(section, id, field string, err error) *ValidationError {
	return &ValidationError{Section: section, ID: id, Field: field, Err: err}
}
