package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrInvalidKind    = errors.New("invalid note kind")
	ErrEmptyTitle     = errors.New("empty title")
	ErrCreationFailed = errors.New("creation failed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CreationError reports a note that should exist but could not be found
// after writing it
type CreationError struct {
	Path   string
	Reason string
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Reason, e.Path)
}

func (e *CreationError) Is(target error) bool {
	return target == ErrCreationFailed
}
