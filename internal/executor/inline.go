package executor

import "fmt"

// Inline is an executor that runs all work on the caller's goroutine before returning
// It holds no state; every Inline value is interchangeable with every other
type Inline struct{}

// BulkFunc is the work of one bulk invocation
// shared is common to every index of one bulk call, local belongs to index i alone
type BulkFunc[S, P any] func(i int, shared *S, local *P) error

// SyncExecute runs work directly and returns its error unchanged
// Panics raised by work propagate to the caller
func (Inline) SyncExecute(work func() error) error {
	if work == nil {
		return ErrNilWork
	}
	return work()
}

// AsyncExecute runs work immediately and captures its outcome in the returned future
// Failures surface only through Get on the future
func (ex Inline) AsyncExecute(work func() error) ReadyFuture[Void] {
	return InvokeVoid(func() error {
		return ex.SyncExecute(work)
	})
}

// TwoWayExecute runs work immediately and returns a future holding its result
func TwoWayExecute[T any](_ Inline, work func() (T, error)) ReadyFuture[T] {
	return Invoke(work)
}

// BulkSyncExecute creates one shared state, then for each index in [0, n) creates one
// per-invocation state and calls work with both. Indices run in ascending order.
// The first failing invocation stops the call and its error is returned as *IndexError.
// With n == 0 the shared state is still created.
func BulkSyncExecute[S, P any](ex Inline, work BulkFunc[S, P], n int, sharedFactory func() S, localFactory func() P) error {
	if err := validateBulk(work, n, sharedFactory, localFactory); err != nil {
		return err
	}

	shared := sharedFactory()
	for i := 0; i < n; i++ {
		local := localFactory()
		if err := work(i, &shared, &local); err != nil {
			return &IndexError{Index: i, Err: err}
		}
	}
	return nil
}

// BulkAsyncExecute is BulkSyncExecute with every failure, including panics and
// argument errors, captured into the returned future
func BulkAsyncExecute[S, P any](ex Inline, work BulkFunc[S, P], n int, sharedFactory func() S, localFactory func() P) ReadyFuture[Void] {
	return InvokeVoid(func() error {
		return BulkSyncExecute(ex, work, n, sharedFactory, localFactory)
	})
}

// BulkTwoWayExecute creates one result object and one shared object, calls work for
// each index in [0, n) with both, and returns the result object in the future
func BulkTwoWayExecute[R, S any](ex Inline, work BulkFunc[R, S], n int, resultFactory func() R, sharedFactory func() S) ReadyFuture[R] {
	return Invoke(func() (R, error) {
		var zero R
		if err := validateBulkArgs(work == nil, n, resultFactory == nil || sharedFactory == nil); err != nil {
			return zero, err
		}

		result := resultFactory()
		shared := sharedFactory()
		for i := 0; i < n; i++ {
			if err := work(i, &result, &shared); err != nil {
				return zero, &IndexError{Index: i, Err: err}
			}
		}
		return result, nil
	})
}

func validateBulk[S, P any](work BulkFunc[S, P], n int, sharedFactory func() S, localFactory func() P) error {
	return validateBulkArgs(work == nil, n, sharedFactory == nil || localFactory == nil)
}

func validateBulkArgs(nilWork bool, n int, nilFactory bool) error {
	switch {
	case nilWork:
		return ErrNilWork
	case nilFactory:
		return ErrNilFactory
	case n < 0:
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	return nil
}
