package future

import (
	"sync"

	"github.com/zareefahmed/FBSimulatorControl/future/executor"
)

// All resolves Done with every input's value, in input order, once every
// input has resolved Done. If any input fails, the downstream fails
// immediately with that error; the remaining inputs are left untouched
// (no auto-cancel). If any input is cancelled, the downstream is
// cancelled. An empty list resolves immediately Done with an empty,
// non-nil slice.
func All[T any](ctx executor.ExecutionContext, fs ...*Future[T]) *Future[[]T] {
	out, resolve := New[[]T]()

	if len(fs) == 0 {
		resolve.ResolveValue([]T{})
		return out
	}

	out.trySetCancelResponder(func() *Future[struct{}] {
		for _, f := range fs {
			f.Cancel()
		}
		return Value(struct{}{})
	})

	var mu sync.Mutex
	results := make([]T, len(fs))
	remaining := len(fs)
	done := false

	for i, f := range fs {
		i, f := i, f
		f.OnComplete(ctx, func(u *Future[T]) {
			mu.Lock()
			if done {
				mu.Unlock()
				return
			}

			if u.State() == Done {
				v, _ := u.Value()
				results[i] = v
				remaining--
				if remaining > 0 {
					mu.Unlock()
					return
				}
				done = true
				final := append([]T(nil), results...)
				mu.Unlock()
				resolve.ResolveValue(final)
				return
			}

			done = true
			mu.Unlock()
			mirrorTerminal(u, resolve)
		})
	}
	return out
}

// Race resolves with the first terminal state among fs, in observation
// order, and cancels every other input. When the list already contains
// terminal inputs, they are evaluated left-to-right and the leftmost
// terminal wins (synchronous precedence rule) without waiting for any
// callback round-trip.
func Race[T any](ctx executor.ExecutionContext, fs ...*Future[T]) *Future[T] {
	if len(fs) == 0 {
		panic("future: Race requires at least one input")
	}

	out, resolve := New[T]()
	out.trySetCancelResponder(func() *Future[struct{}] {
		for _, f := range fs {
			f.Cancel()
		}
		return Value(struct{}{})
	})

	for _, f := range fs {
		if f.Completed() {
			settleRace(f, fs, resolve)
			return out
		}
	}

	// The settled flag is released before settleRace runs: cancelling a
	// loser re-enters this callback on the same goroutine under Inline.
	var mu sync.Mutex
	settled := false
	for _, f := range fs {
		f.OnComplete(ctx, func(u *Future[T]) {
			mu.Lock()
			if settled {
				mu.Unlock()
				return
			}
			settled = true
			mu.Unlock()
			settleRace(u, fs, resolve)
		})
	}
	return out
}

func settleRace[T any](winner *Future[T], all []*Future[T], resolve Resolvable[T]) {
	mirror(winner, resolve)
	for _, f := range all {
		if f != winner {
			f.Cancel()
		}
	}
}
