package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ValidationError.
type ErrorKind string

const (
	MissingField                 ErrorKind = "MissingField"
	BadNumber                    ErrorKind = "BadNumber"
	BelowMinimumOrder            ErrorKind = "BelowMinimumOrder"
	UnknownCategoryOrSubcategory ErrorKind = "UnknownCategoryOrSubcategory"
	InvalidChoice                ErrorKind = "InvalidChoice"
	BadDate                      ErrorKind = "BadDate"
)

// ValidationError is returned when a command or query input is rejected.
// Nothing is mutated when it is returned.
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"error"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Message)
}

// Missing reports a required field that was empty.
func Missing(field string) *ValidationError {
	return &ValidationError{Kind: MissingField, Field: field, Message: field + " is required"}
}

// NotANumber reports a numeric input that failed to parse or was out of range.
func NotANumber(field, value string) *ValidationError {
	return &ValidationError{Kind: BadNumber, Field: field, Message: fmt.Sprintf("%q is not a valid %s", value, field)}
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}

var ErrNotFound = errors.New("not found")

// NotFoundError names the missing record and matches ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }
