package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
// Code is a stable machine-readable identifier returned to API clients.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// First returns the first field error. The zero FieldError is returned when
// the list is empty.
func (e *ValidationError) First() FieldError {
	if len(e.Errors) == 0 {
		return FieldError{}
	}
	return e.Errors[0]
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Code: code, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
