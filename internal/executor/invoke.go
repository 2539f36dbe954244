package executor

import "github.com/sourcegraph/conc/panics"

// Invoke calls fn exactly once and packages its outcome into a ReadyFuture
// A returned error or a panic is captured into the future and never escapes
func Invoke[T any](fn func() (T, error)) ReadyFuture[T] {
	if fn == nil {
		return Failed[T](ErrNilWork)
	}

	var (
		v   T
		err error
		pc  panics.Catcher
	)
	pc.Try(func() { v, err = fn() })

	if r := pc.Recovered(); r != nil {
		return Failed[T](newPanicError(r))
	}
	if err != nil {
		return Failed[T](err)
	}
	return Ready(v)
}

// InvokeVoid is Invoke for work that produces no value
func InvokeVoid(fn func() error) ReadyFuture[Void] {
	if fn == nil {
		return Failed[Void](ErrNilWork)
	}
	return Invoke(func() (Void, error) {
		return Void{}, fn()
	})
}
