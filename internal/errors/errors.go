package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution (including a rejected n).
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorInput    = 5   // Indicates standard input ended before a number was read.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrEndOfInput is returned by the input reader when the stream closes
// before a line could be parsed as an integer.
var ErrEndOfInput = errors.New("unexpected end of input")

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

// BoundError reports an index above the enforced ceiling. The message is the
// user-facing line printed before the early exit.
type BoundError struct {
	// Value is the rejected index.
	Value int64
	// Max is the ceiling that was exceeded.
	Max int64
}

// Error returns the fixed bound violation message.
func (e *BoundError) Error() string {
	return fmt.Sprintf("Error: The n value is bigger than %d.", e.Max)
}

// CalculationError encapsulates a calculation error while preserving the
// original cause.
type CalculationError struct {
	// Algorithm is the name of the calculator that failed.
	Algorithm string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string {
	if e.Algorithm == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Algorithm, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap lets errors.Is match context.DeadlineExceeded.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Returns nil if err is nil.
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

// ColorProvider colors error output without tying this package to a
// particular terminal styling library.
type ColorProvider interface {
	Error(text string) string
	Warning(text string) string
}

// plainColors is used when no ColorProvider is supplied.
type plainColors struct{}

func (plainColors) Error(text string) string   { return text }
func (plainColors) Warning(text string) string { return text }

// HandleCalculationError prints a calculation failure and maps it to an exit
// code.
//
// Parameters:
//   - err: The error returned by the calculation (nil means success).
//   - duration: How long the calculation ran before failing.
//   - out: The writer for the error message.
//   - colors: Optional color provider; nil prints plain text.
//
// Returns:
//   - int: The exit code matching the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = plainColors{}
	}

	var timeoutErr TimeoutError
	switch {
	case errors.As(err, &timeoutErr):
		fmt.Fprintln(out, colors.Error(fmt.Sprintf("Error: calculation timed out after %s.", timeoutErr.Limit)))
		return ExitErrorTimeout
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(out, colors.Error(fmt.Sprintf("Error: calculation timed out after %s.", duration.Round(time.Millisecond))))
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(out, colors.Warning("Calculation canceled."))
		return ExitErrorCanceled
	default:
		fmt.Fprintln(out, colors.Error(fmt.Sprintf("Error: %v", err)))
		return ExitErrorGeneric
	}
}
