// Package executor provides an inline executor and the ready future it returns.
//
// Inline runs every unit of work on the caller's goroutine before the call returns.
// The "async" operations differ from the "sync" ones only in how failures are
// reported: they return a ReadyFuture holding the outcome instead of returning the
// error directly.
//
// # Operations
//
//   - Inline.SyncExecute: run work, return its error
//   - Inline.AsyncExecute: run work, capture its outcome in a ReadyFuture[Void]
//   - TwoWayExecute: run work returning a value, capture it in a ReadyFuture[T]
//   - BulkSyncExecute: run n indexed invocations sharing one state object, fail fast
//   - BulkAsyncExecute: BulkSyncExecute with the outcome captured in a ReadyFuture[Void]
//   - BulkTwoWayExecute: bulk form whose result object is returned in the future
//
// Operations that need type parameters are package functions taking the executor as
// their first argument, since Go methods cannot declare type parameters.
//
// # Basic Usage
//
//	var ex executor.Inline
//
//	if err := ex.SyncExecute(func() error { return step() }); err != nil {
//	    return err
//	}
//
//	f := executor.TwoWayExecute(ex, func() (int, error) { return compute() })
//	f.Wait() // no-op, the result already exists
//	v, err := f.Get()
//
// # Bulk Execution
//
//	err := executor.BulkSyncExecute(ex,
//	    func(i int, total *int, _ *executor.Void) error {
//	        *total += i
//	        return nil
//	    },
//	    n,
//	    func() int { return 0 },
//	    func() executor.Void { return executor.Void{} },
//	)
//
// The shared factory is called once per bulk call, even when n is zero. The
// per-invocation factory is called once for each index that runs. Indices run in
// ascending order and the first failure stops the call.
//
// # Failures
//
// Sync operations return the work's error unchanged (bulk operations wrap it in
// *IndexError) and let panics propagate. Async operations capture both returned errors
// and panics; a panic is stored as *PanicError. A failure held by a future that is
// never read with Get is silently discarded.
//
// # Concurrency
//
// Nothing in this package starts a goroutine. Bulk state is touched by one goroutine
// only and needs no locking. A ReadyFuture is immutable after construction.
package executor
