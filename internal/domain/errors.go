package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrDuplicateAttempt means the user already completed the survey.
	ErrDuplicateAttempt = errors.New("survey already taken")
	// ErrSurveyInactive means a non-operator tried to start a survey that is not active.
	ErrSurveyInactive = fmt.Errorf("survey is not active: %w", ErrForbidden)
	// ErrRateLimited means the caller exceeded its request window.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrStorageTransient is returned once the retry budget for a file
	// operation is exhausted.
	ErrStorageTransient = errors.New("storage temporarily unavailable")
	// ErrStorageCorrupt marks persisted data that cannot be decoded or parsed.
	// Callers log it and treat the data as absent.
	ErrStorageCorrupt = errors.New("storage data corrupt")
	// ErrStorageLimit is returned when a write would exceed the file size
	// limit or the disk is low on space. Nothing is written.
	ErrStorageLimit = errors.New("storage limit exceeded")
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
