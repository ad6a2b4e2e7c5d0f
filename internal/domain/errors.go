package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound covers both a genuinely absent row and a row owned by
	// another tenant. The two cases are intentionally indistinguishable.
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
	ErrUnavailable  = errors.New("storage unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ConflictError reports a uniqueness violation and names the offending field.
// It never carries the conflicting value, so nothing about another tenant's
// data leaks through the message.
type ConflictError struct {
	Entity string
	Field  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s already taken", e.Entity, e.Field)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError for the given entity and field.
func NewConflictError(entity, field string) *ConflictError {
	return &ConflictError{Entity: entity, Field: field}
}
