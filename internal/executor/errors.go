package executor

import (
	"errors"
	"fmt"

	"github.com/sourcegraph/conc/panics"
)

var (
	// ErrNilWork indicates a nil work function was passed to an operation
	ErrNilWork = errors.New("executor: nil work function")

	// ErrNilFactory indicates a nil state factory was passed to a bulk operation
	ErrNilFactory = errors.New("executor: nil state factory")

	// ErrNegativeCount indicates a bulk operation was asked for fewer than zero invocations
	ErrNegativeCount = errors.New("executor: negative invocation count")

	// ErrNilFailure is stored by Failed when it is handed a nil error
	ErrNilFailure = errors.New("executor: failure with nil error")
)

// PanicError is the failure captured when work panics inside Invoke or InvokeVoid
type PanicError struct {
	// Value is the argument passed to panic
	Value interface{}

	// Stack is the goroutine stack at the point of recovery
	Stack []byte
}

func newPanicError(r *panics.Recovered) *PanicError {
	return &PanicError{Value: r.Value, Stack: r.Stack}
}

// Error implements the error interface
func (p *PanicError) Error() string {
	return fmt.Sprintf("executor: work panicked: %v", p.Value)
}

// Unwrap returns the panic value when it is itself an error
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// IndexError identifies the bulk invocation that failed
type IndexError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("invocation %d: %v", e.Index, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/As compatibility
func (e *IndexError) Unwrap() error {
	return e.Err
}

// FailedIndex reports the bulk index carried by err, if any
func FailedIndex(err error) (int, bool) {
	var idxErr *IndexError
	if errors.As(err, &idxErr) {
		return idxErr.Index, true
	}
	return 0, false
}

// IsPanic reports whether err was captured from a panicking work function
func IsPanic(err error) bool {
	var panicErr *PanicError
	return errors.As(err, &panicErr)
}
