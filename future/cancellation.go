package future

import "github.com/zareefahmed/FBSimulatorControl/future/executor"

// RespondToCancellation installs handler on f: when f transitions to
// Cancelled, handler is invoked on ctx and its returned Future becomes the
// resolution of f.Cancel()'s returned Future. Only the first handler
// installed on a given upstream fires (Invariant 6); later installs are
// silently discarded. The downstream Future returned here mirrors f's
// terminal state and is otherwise a passthrough.
func RespondToCancellation[T any](ctx executor.ExecutionContext, f *Future[T], handler func() *Future[struct{}]) *Future[T] {
	f.trySetCancelResponder(func() *Future[struct{}] {
		return Resolve(ctx, func() (*Future[struct{}], error) { return handler(), nil })
	})

	out, resolve := New[T]()
	bindCancelUpward(out, f)

	f.OnComplete(ctx, func(u *Future[T]) {
		mirror(u, resolve)
	})
	return out
}
