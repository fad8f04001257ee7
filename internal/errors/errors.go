// Package errors provides sentinel errors and structured error details for gojo.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates a bad flag, a bad flag value or a missing argument.
	ErrUsage = errors.New("incorrect usage")

	// ErrNotFound indicates a missing file, directory or executable.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a value that cannot be persisted or used as given.
	ErrValidation = errors.New("validation error")

	// ErrToolFailed indicates an external tool exited unsuccessfully.
	ErrToolFailed = errors.New("tool failed")
)

// DetailError captures structured error information for the terminal.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file or directory path related to the error (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(":\n\t")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n\tlocation: ")
		b.WriteString(e.Location)
	}
	if e.Hint != "" {
		b.WriteString("\n\t")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates a usage error pointing the user at `gojo help <command>`.
func NewUsageError(command, message string) error {
	hint := "see 'gojo help'"
	if command != "" {
		hint = fmt.Sprintf("see 'gojo help %s'", command)
	}
	return &DetailError{
		Type:    "incorrect usage",
		Message: message,
		Hint:    hint,
		Cause:   ErrUsage,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "file not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}
