package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that a field value failed its constraints
	ErrValidationFailed = errors.New("validation failed")

	// ErrTypeConstraint indicates that a relationship was given the wrong kind of entity
	ErrTypeConstraint = errors.New("type constraint violated")

	// ErrImmutableField indicates an attempt to change a write-once field
	ErrImmutableField = errors.New("field is immutable")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports ErrValidationFailed as a match so callers can test the kind without errors.As.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// TypeConstraintError is returned when a relationship field receives something
// other than a registered entity of the expected kind.
type TypeConstraintError struct {
	Field    string
	Expected string
}

func (e *TypeConstraintError) Error() string {
	return fmt.Sprintf("type constraint on field '%s': must be a registered %s", e.Field, e.Expected)
}

func (e *TypeConstraintError) Is(target error) bool {
	return target == ErrTypeConstraint
}

// ImmutableFieldError is returned when a write-once field is assigned a second time.
type ImmutableFieldError struct {
	Field string
}

func (e *ImmutableFieldError) Error() string {
	return fmt.Sprintf("field '%s' cannot be changed once set", e.Field)
}

func (e *ImmutableFieldError) Is(target error) bool {
	return target == ErrImmutableField
}
