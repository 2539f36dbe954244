package util

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types for execbench
var (
	// ErrInvalidConfig indicates a configuration error
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrVerificationFailed indicates a kernel produced output that differs from the reference
	ErrVerificationFailed = errors.New("verification failed")

	// ErrCancelled indicates an operation was cancelled
	ErrCancelled = errors.New("operation cancelled")

	// ErrUnknownCase indicates a benchmark case name that does not exist
	ErrUnknownCase = errors.New("unknown benchmark case")
)

// CaseError wraps an error with the benchmark case it came from
type CaseError struct {
	Case string
	Err  error
}

// Error implements the error interface
func (e *CaseError) Error() string {
	return fmt.Sprintf("case %q: %v", e.Case, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/As compatibility
func (e *CaseError) Unwrap() error {
	return e.Err
}

// WrapCaseError wraps an error with benchmark case context
func WrapCaseError(name string, err error) error {
	if err == nil {
		return nil
	}
	return &CaseError{
		Case: name,
		Err:  err,
	}
}

// MultiError aggregates multiple errors
type MultiError struct {
	Errors []error
}

// Error implements the error interface
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:", len(m.Errors)))
	for i, err := range m.Errors {
		if i < 10 { // Limit to first 10 errors in the message
			sb.WriteString(fmt.Sprintf("\n  %d. %v", i+1, err))
		} else if i == 10 {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more errors", len(m.Errors)-10))
			break
		}
	}
	return sb.String()
}

// Unwrap returns the errors for errors.Is/As compatibility
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Add adds an error to the multi-error
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// ErrorOrNil returns nil if no errors were added, otherwise returns the MultiError
func (m *MultiError) ErrorOrNil() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}

// NewMultiError creates a new MultiError from a slice of errors
// It filters out nil errors
func NewMultiError(errors []error) *MultiError {
	m := &MultiError{
		Errors: make([]error, 0, len(errors)),
	}
	for _, err := range errors {
		if err != nil {
			m.Errors = append(m.Errors, err)
		}
	}
	return m
}

// ValidationError represents a validation failure
// It matches ErrInvalidConfig with errors.Is
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if v.Value != nil {
		return fmt.Sprintf("validation failed for field %q (value: %v): %s", v.Field, v.Value, v.Message)
	}
	return fmt.Sprintf("validation failed for field %q: %s", v.Field, v.Message)
}

// Is reports whether target is ErrInvalidConfig
func (v *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsCancelled checks if an error is a cancellation error
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsVerificationError checks if an error is a result mismatch
func IsVerificationError(err error) bool {
	return errors.Is(err, ErrVerificationFailed)
}

// FriendlyError converts technical errors to user-friendly messages
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case IsCancelled(err):
		return "Benchmark was cancelled."
	case IsVerificationError(err):
		return fmt.Sprintf("A kernel produced a wrong result: %v", err)
	case errors.Is(err, ErrUnknownCase):
		return fmt.Sprintf("%v. Run 'execbench cases' to list the available cases.", err)
	case errors.Is(err, ErrInvalidConfig):
		return fmt.Sprintf("Invalid configuration: %v. Please check your config file and command-line flags.", err)
	default:
		return err.Error()
	}
}

// CombineErrors combines multiple errors into a single error
// Returns nil if all errors are nil
func CombineErrors(errors ...error) error {
	m := NewMultiError(errors)
	return m.ErrorOrNil()
}

// WrapErrorf wraps an error with a formatted message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
