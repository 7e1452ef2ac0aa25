package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMissingIdentity indicates that a per-caller operation was invoked without a resolvable account identifier.
var ErrMissingIdentity = errors.New("missing caller identity")

// ErrInvalidIdentity indicates a caller identifier that cannot name an account partition.
var ErrInvalidIdentity = errors.New("invalid caller identity")

// ErrStoreUnavailable indicates that the document store could not be reached or initialized.
var ErrStoreUnavailable = errors.New("document store unavailable")

// ValidationError describes a payload that failed the schema or enum contract.
// Field holds the offending JSON field path, e.g. "guarantors[0].mobileNumber".
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError builds a ValidationError for the given field path.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
