package resource

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the target row does not exist.
var ErrNotFound = errors.New("record not found")

// ConstraintKind classifies store integrity failures.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintCheck      ConstraintKind = "check"
)

// ConstraintError wraps a store-level integrity violation.
type ConstraintError struct {
	Kind       ConstraintKind
	Table      string
	Column     string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s constraint violated: %s", e.Kind, e.Constraint)
	}
	return fmt.Sprintf("%s constraint violated", e.Kind)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// ValidationError reports malformed input for a single field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
