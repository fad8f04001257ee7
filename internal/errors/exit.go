package errors

import "errors"

// Exit codes returned by the gojo binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error, usually I/O.
	ExitGeneralError = 1

	// ExitUsageError indicates an unrecognised flag or bad flag value.
	ExitUsageError = 2

	// ExitNotFound indicates a missing project file, directory or executable.
	ExitNotFound = 3

	// ExitToolFailure indicates an external tool returned a non-zero status.
	ExitToolFailure = 4
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Err is the underlying error.
	Err error

	// Code is the process exit code.
	Code int

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrToolFailed):
		return ExitToolFailure
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitUsageError:
		return "Usage Error"
	case ExitNotFound:
		return "Not Found"
	case ExitToolFailure:
		return "Tool Failure"
	default:
		return "Unknown"
	}
}
