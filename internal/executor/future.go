package executor

// Void is the result type of work that produces no value
// ReadyFuture[Void] holds nothing but an optional failure
type Void = struct{}

// Future is the consumer-facing surface of an execution result
// Get returns the value or the captured failure; Wait blocks until the result exists
type Future[T any] interface {
	Get() (T, error)
	Wait()
}

// ReadyFuture is a future whose result already exists when the holder receives it
// Exactly one of value or err is meaningful: a non-nil err marks the failure state
type ReadyFuture[T any] struct {
	value T
	err   error
}

// Ready returns a future holding the successful value v
func Ready[T any](v T) ReadyFuture[T] {
	return ReadyFuture[T]{value: v}
}

// ReadyVoid returns a successful future for work that produces no value
func ReadyVoid() ReadyFuture[Void] {
	return ReadyFuture[Void]{}
}

// Failed returns a future holding the captured failure err
// A nil err is replaced by ErrNilFailure so the failure state always carries an error
func Failed[T any](err error) ReadyFuture[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return ReadyFuture[T]{err: err}
}

// Get returns the held value, or the zero value and the captured failure
// Get does not invalidate the future: repeated calls return the same outcome
func (f ReadyFuture[T]) Get() (T, error) {
	if f.err != nil {
		var zero T
		return zero, f.err
	}
	return f.value, nil
}

// Wait returns immediately. The result already exists by construction, but Wait is
// kept so ReadyFuture can stand in wherever a Future is expected
func (f ReadyFuture[T]) Wait() {}

var _ Future[int] = ReadyFuture[int]{}
var _ Future[Void] = ReadyFuture[Void]{}
