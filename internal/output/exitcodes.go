package output

import "errors"

// Exit codes, one per pipeline stage that can fail:
// 0 = Success
// 1 = Usage error (bad flags, unusable output destination)
// 2 = Input unavailable (journal file cannot be read)
// 3 = Decode error (input does not match the Day One export shape)
// 4 = Conversion failure (pandoc missing or exited non-zero)
// 5 = Invariant violation (internal calendar state out of range)
const (
	ExitSuccess    = 0
	ExitUsage      = 1
	ExitInput      = 2
	ExitDecode     = 3
	ExitConversion = 4
	ExitInvariant  = 5
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUsageError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, unreadable config, unwritable output paths.
func NewUsageError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: message,
	}
}

// NewInputError creates an error for an unreadable input document (exit code 2).
func NewInputError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitInput,
		Message: message,
		Cause:   cause,
	}
}

// NewDecodeError creates an error for input that does not match the export
// shape (exit code 3). Use for: missing required fields, malformed
// timestamps, unknown moon phase codes.
func NewDecodeError(message string) *ExitError {
	return &ExitError{
		Code:    ExitDecode,
		Message: message,
	}
}

// NewDecodeErrorWithCause creates a decode error wrapping an underlying cause.
func NewDecodeErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitDecode,
		Message: message,
		Cause:   cause,
	}
}

// NewConversionError creates an error for a markup conversion that could not
// run to completion (exit code 4).
func NewConversionError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitConversion,
		Message: message,
		Cause:   cause,
	}
}

// NewInvariantError creates an error for internal state that should be
// impossible after decoding (exit code 5).
func NewInvariantError(message string) *ExitError {
	return &ExitError{
		Code:    ExitInvariant,
		Message: message,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUsage for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to usage error for untyped errors
	return ExitUsage
}
