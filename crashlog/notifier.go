package crashlog

import (
	"context"
	"sync"

	"github.com/zareefahmed/FBSimulatorControl/coalescing"
	"github.com/zareefahmed/FBSimulatorControl/future"
)

// Notifier is a Go port of FBCrashLogNotifier: a thin facade over a Store
// that exposes an idempotent StartListening and a NextEvent lookup.
// Concurrent StartListening calls are serialized through coalescing.Queue
// ("second call waits for the first, excess calls collapse"); since the
// queue may still run its function more than once, startOnce makes the
// setup itself run at most once.
type Notifier struct {
	store *Store

	startOnce sync.Once
	start     func(ctx context.Context) // the actual one-time setup, run via begin
	begin     func(ctx context.Context) (done <-chan struct{})
}

// NewNotifier wraps store in a Notifier. onStart, if non-nil, performs
// whatever one-time observation setup a real deployment needs (e.g.
// opening a directory watch); it runs at most once regardless of how many
// times StartListening is called concurrently.
func NewNotifier(store *Store, onStart func(ctx context.Context)) *Notifier {
	n := &Notifier{store: store}
	if onStart == nil {
		onStart = func(context.Context) {}
	}
	n.start = onStart
	n.begin = coalescing.Queue(context.Background(), func(ctx context.Context) {
		n.startOnce.Do(func() { n.start(ctx) })
	})
	return n
}

// StartListening begins observation, blocking until setup has completed.
// Safe to call from multiple goroutines: concurrent callers coalesce onto
// the same in-flight (or most recently completed) setup.
func (n *Notifier) StartListening(ctx context.Context) {
	<-n.begin(ctx)
}

// NextEvent returns a Future resolving with the next ingested Event
// matching predicate.
func (n *Notifier) NextEvent(predicate func(Event) bool) *future.Future[Event] {
	return n.store.NextMatching(predicate)
}
