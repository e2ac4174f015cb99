package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that entity validation rejected a field.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError reports which field of a news entry or crawl job failed
// validation and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
