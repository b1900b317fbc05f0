package future

import (
	"sync"
	"time"

	"github.com/zareefahmed/FBSimulatorControl/future/executor"
	"github.com/zareefahmed/FBSimulatorControl/future/internal/clock"
)

// Resolve schedules producer on ctx; the Future it returns becomes the
// downstream's terminal state. A synchronous error from producer fails the
// downstream directly.
func Resolve[T any](ctx executor.ExecutionContext, producer func() (*Future[T], error)) *Future[T] {
	out, resolve := New[T]()
	relay := newCancelRelay(nil)
	out.trySetCancelResponder(relay.cancel)

	ctx.Execute(func() {
		inner, err := producer()
		if err != nil {
			resolve.ResolveError(err)
			return
		}
		relay.reparent(inner)
		inner.OnComplete(ctx, func(g *Future[T]) {
			relay.clear()
			mirror(g, resolve)
		})
	})
	return out
}

// ResolveWhen polls predicate on ctx at the given interval until it returns
// true, then resolves Done(true). Cancelling the downstream stops polling.
func ResolveWhen(ctx executor.ExecutionContext, clk clock.Clock, interval time.Duration, predicate func() bool) *Future[bool] {
	out, resolve := New[bool]()

	ticker := clk.NewTicker(interval)
	stopped := make(chan struct{})
	var stopOnce sync.Once
	stop := func() {
		stopOnce.Do(func() {
			ticker.Stop()
			close(stopped)
		})
	}

	out.trySetCancelResponder(func() *Future[struct{}] {
		stop()
		return Value(struct{}{})
	})

	go func() {
		defer stop()
		for {
			select {
			case <-stopped:
				return
			case <-ticker.C:
				result := make(chan bool, 1)
				ctx.Execute(func() { result <- predicate() })
				if <-result {
					resolve.ResolveValue(true)
					return
				}
			}
		}
	}()

	return out
}

// ResolveUntil repeatedly invokes producer on ctx. A Done inner Future
// becomes the downstream's result and stops the loop; a Failed inner
// Future is discarded and producer is invoked again; a Cancelled inner
// Future cancels the downstream and the loop does not continue (S6).
func ResolveUntil[T any](ctx executor.ExecutionContext, producer func() *Future[T]) *Future[T] {
	out, resolve := New[T]()
	relay := newCancelRelay(nil)
	out.trySetCancelResponder(relay.cancel)

	var attempt func()
	attempt = func() {
		ctx.Execute(func() {
			inner := producer()
			relay.reparent(inner)
			inner.OnComplete(ctx, func(g *Future[T]) {
				switch g.State() {
				case Done:
					relay.clear()
					mirror(g, resolve)
				case Cancelled:
					relay.clear()
					resolve.Cancel()
				case Failed:
					attempt()
				}
			})
		})
	}
	attempt()
	return out
}
