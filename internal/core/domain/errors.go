package domain

import (
	"errors"
	"fmt"
)

// ValidationError marks malformed or out-of-range input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// NotFoundError marks a referenced entity that does not exist. Absence that
// is part of the normal contract (reads, delete-by-id) is signalled by a
// nil/false return instead, never by this type.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// ConflictError marks a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func IsConflictError(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// AuthenticationError marks rejected credentials.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

func IsAuthenticationError(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}
