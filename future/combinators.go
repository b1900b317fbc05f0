package future

import "github.com/zareefahmed/FBSimulatorControl/future/executor"

// Map transforms a Done value with fn, dispatched on ctx. A Failed or
// Cancelled upstream is mirrored onto the downstream Future without calling
// fn.
func Map[T, U any](ctx executor.ExecutionContext, f *Future[T], fn func(T) U) *Future[U] {
	out, resolve := New[U]()
	bindCancelUpward(out, f)

	f.OnComplete(ctx, func(u *Future[T]) {
		if u.State() == Done {
			v, _ := u.Value()
			resolve.ResolveValue(fn(v))
			return
		}
		mirrorTerminal(u, resolve)
	})
	return out
}

// FlatMap (fmapOnSuccess) invokes fn with a Done upstream's value; fn's
// returned Future's terminal state becomes the downstream's. A Failed or
// Cancelled upstream is mirrored without calling fn. If fn returns an error
// synchronously, the downstream Future fails immediately.
func FlatMap[T, U any](ctx executor.ExecutionContext, f *Future[T], fn func(T) (*Future[U], error)) *Future[U] {
	out, resolve := New[U]()
	relay := newCancelRelay(Cancellable(f))
	out.trySetCancelResponder(relay.cancel)

	f.OnComplete(ctx, func(u *Future[T]) {
		if u.State() != Done {
			mirrorTerminal(u, resolve)
			return
		}
		v, _ := u.Value()
		inner, err := fn(v)
		if err != nil {
			resolve.ResolveError(err)
			return
		}
		relay.reparent(inner)
		inner.OnComplete(ctx, func(g *Future[U]) {
			relay.clear()
			mirror(g, resolve)
		})
	})
	return out
}

// Chain (bind over any terminal state) invokes g with the upstream Future
// itself whenever it resolves Done or Failed, letting g translate failure
// into success or vice versa. If the upstream is Cancelled, g is not
// called and the downstream is Cancelled directly (S3).
func Chain[T, U any](ctx executor.ExecutionContext, f *Future[T], g func(*Future[T]) (*Future[U], error)) *Future[U] {
	out, resolve := New[U]()
	relay := newCancelRelay(Cancellable(f))
	out.trySetCancelResponder(relay.cancel)

	f.OnComplete(ctx, func(u *Future[T]) {
		if u.State() == Cancelled {
			resolve.Cancel()
			return
		}
		inner, err := g(u)
		if err != nil {
			resolve.ResolveError(err)
			return
		}
		relay.reparent(inner)
		inner.OnComplete(ctx, func(r *Future[U]) {
			relay.clear()
			mirror(r, resolve)
		})
	})
	return out
}

// Fallback resolves Done(v) when the upstream fails; otherwise it mirrors
// the upstream (including Cancelled).
func Fallback[T any](ctx executor.ExecutionContext, f *Future[T], v T) *Future[T] {
	out, resolve := New[T]()
	bindCancelUpward(out, f)

	f.OnComplete(ctx, func(u *Future[T]) {
		if u.State() == Failed {
			resolve.ResolveValue(v)
			return
		}
		mirror(u, resolve)
	})
	return out
}

// Replace (fmapReplace) adopts other's terminal state once the upstream
// completes successfully; other may still be Running at that moment. A
// Failed or Cancelled upstream is mirrored instead of consulting other.
func Replace[T, U any](ctx executor.ExecutionContext, f *Future[T], other *Future[U]) *Future[U] {
	out, resolve := New[U]()
	relay := newCancelRelay(Cancellable(f))
	out.trySetCancelResponder(relay.cancel)

	f.OnComplete(ctx, func(u *Future[T]) {
		if u.State() != Done {
			mirrorTerminal(u, resolve)
			return
		}
		relay.reparent(other)
		other.OnComplete(ctx, func(o *Future[U]) {
			relay.clear()
			mirror(o, resolve)
		})
	})
	return out
}
