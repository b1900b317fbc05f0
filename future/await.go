package future

import (
	"time"

	"github.com/zareefahmed/FBSimulatorControl/future/executor"
)

// Await blocks until f is terminal or timeout elapses, converting the
// asynchronous Future into a synchronous (value, error) result. A timeout
// of zero or less blocks indefinitely.
func Await[T any](f *Future[T], timeout time.Duration) (T, error) {
	var zero T

	done := make(chan struct{})
	f.OnComplete(executor.Inline{}, func(*Future[T]) { close(done) })

	if timeout <= 0 {
		<-done
	} else {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		select {
		case <-done:
		case <-timer.C:
			return zero, NewTimeoutError("await timed out")
		}
	}

	switch f.State() {
	case Done:
		v, _ := f.Value()
		return v, nil
	case Failed:
		err, _ := f.Err()
		return zero, err
	case Cancelled:
		return zero, CancelledError
	default:
		return zero, nil
	}
}
