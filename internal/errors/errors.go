package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a product mismatch between multipliers.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel errors for the arithmetic contracts. They are carried by
// PreconditionError and CapacityError so callers can match them with errors.Is.
var (
	// ErrNegativeDifference reports a subtraction whose subtrahend exceeds
	// its minuend.
	ErrNegativeDifference = errors.New("subtrahend exceeds minuend")
	// ErrInsufficientCapacity reports an output buffer shorter than the
	// product it must hold.
	ErrInsufficientCapacity = errors.New("output buffer too small")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a multiplication failure while preserving the
// original cause.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// PreconditionError reports a violated caller contract of an arithmetic
// routine. The reference arithmetic leaves such calls undefined; here they
// fail fast instead of producing a wrapped-around result.
type PreconditionError struct {
	// Operation names the routine whose contract was violated.
	Operation string
	// Cause is the sentinel describing the contract.
	Cause error
	// MinuendWords and SubtrahendWords record the operand lengths.
	MinuendWords    int
	SubtrahendWords int
}

// Error returns a formatted message describing the violated precondition.
func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %v (operand words %d, %d)",
		e.Operation, e.Cause, e.MinuendWords, e.SubtrahendWords)
}

// Unwrap returns the sentinel cause.
func (e PreconditionError) Unwrap() error { return e.Cause }

// CapacityError reports an output buffer whose length cannot hold the
// wa+wb words of a product.
type CapacityError struct {
	// Required is the number of words the product needs.
	Required int
	// Capacity is the number of words the caller supplied.
	Capacity int
}

// Error returns a formatted message describing the capacity shortfall.
func (e CapacityError) Error() string {
	return fmt.Sprintf("output buffer holds %d words, product needs %d", e.Capacity, e.Required)
}

// Unwrap returns ErrInsufficientCapacity.
func (e CapacityError) Unwrap() error { return ErrInsufficientCapacity }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports two multipliers disagreeing on a product.
type MismatchError struct {
	// Reference is the name of the multiplier taken as the reference.
	Reference string
	// Candidate is the name of the multiplier that disagreed.
	Candidate string
}

// Error returns a formatted message naming both multipliers.
func (e MismatchError) Error() string {
	return fmt.Sprintf("product of %q differs from %q", e.Candidate, e.Reference)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
