package future

import (
	"time"

	"github.com/zareefahmed/FBSimulatorControl/future/executor"
	"github.com/zareefahmed/FBSimulatorControl/future/internal/clock"
)

// Delay resolves with the upstream's terminal state no sooner than d after
// that state is reached.
func Delay[T any](ctx executor.ExecutionContext, clk clock.Clock, f *Future[T], d time.Duration) *Future[T] {
	out, resolve := New[T]()
	bindCancelUpward(out, f)

	f.OnComplete(ctx, func(u *Future[T]) {
		clk.AfterFunc(d, func() {
			mirror(u, resolve)
		})
	})
	return out
}

// Timeout resolves with the upstream's terminal state if it completes
// within d; otherwise it fails with a Timeout error carrying description.
// The upstream is left running; use TimeoutAndCancel to cancel it too.
func Timeout[T any](ctx executor.ExecutionContext, clk clock.Clock, f *Future[T], d time.Duration, description string) *Future[T] {
	return timeout(ctx, clk, f, d, description, false)
}

// TimeoutAndCancel is Timeout, additionally cancelling the upstream when
// the deadline fires before it completes.
func TimeoutAndCancel[T any](ctx executor.ExecutionContext, clk clock.Clock, f *Future[T], d time.Duration, description string) *Future[T] {
	return timeout(ctx, clk, f, d, description, true)
}

func timeout[T any](ctx executor.ExecutionContext, clk clock.Clock, f *Future[T], d time.Duration, description string, cancelUpstream bool) *Future[T] {
	out, resolve := New[T]()
	bindCancelUpward(out, f)

	timer := clk.AfterFunc(d, func() {
		if resolve.ResolveError(NewTimeoutError(description)) && cancelUpstream {
			f.Cancel()
		}
	})

	f.OnComplete(ctx, func(u *Future[T]) {
		timer.Stop()
		mirror(u, resolve)
	})
	return out
}
