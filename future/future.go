// Package future implements a single-resolution asynchronous result type
// and its combinator algebra: a Go port of FBControlCore's FBFuture.
package future

import (
	"sync"

	"github.com/zareefahmed/FBSimulatorControl/future/executor"
)

// State is the lifecycle stage of a Future. It is monotonic: once
// non-Running, a Future never changes state again.
type State int32

const (
	Running State = iota
	Done
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

type callbackEntry[T any] struct {
	ctx executor.ExecutionContext
	cb  func(*Future[T])
}

// Future represents the eventual outcome of a computation that completes
// with a value, fails with an error, or is cancelled. It resolves at most
// once; see Invariant 1 in the design notes.
type Future[T any] struct {
	mu sync.Mutex

	state State
	value T
	err   error

	callbacks []callbackEntry[T]

	responderSet    bool
	cancelResponder func() *Future[struct{}]
	cancelFuture    *Future[struct{}]
}

// Resolvable is the write view of a Future, handed to producers.
type Resolvable[T any] struct {
	f *Future[T]
}

// New creates a Running Future together with the Resolvable handle that
// completes it.
func New[T any]() (*Future[T], Resolvable[T]) {
	f := &Future[T]{state: Running}
	return f, Resolvable[T]{f: f}
}

// Value returns a Future already terminal in the Done state.
func Value[T any](v T) *Future[T] {
	return &Future[T]{state: Done, value: v}
}

// Errorf returns a Future already terminal in the Failed state.
func Errorf[T any](err error) *Future[T] {
	return &Future[T]{state: Failed, err: err}
}

// Future returns the Future handle backed by this Resolvable.
func (r Resolvable[T]) Future() *Future[T] { return r.f }

// ResolveValue attempts the Running -> Done transition. Reports whether
// this call won the race; a losing call is a silent no-op.
func (r Resolvable[T]) ResolveValue(v T) bool {
	return r.f.settle(Done, v, nil)
}

// ResolveError attempts the Running -> Failed transition. Reports whether
// this call won the race; a losing call is a silent no-op.
func (r Resolvable[T]) ResolveError(err error) bool {
	var zero T
	return r.f.settle(Failed, zero, err)
}

// Cancel drives the underlying Future to Cancelled. See (*Future[T]).Cancel.
func (r Resolvable[T]) Cancel() *Future[struct{}] {
	return r.f.Cancel()
}

// State reports the current lifecycle stage.
func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Completed reports whether the Future has left the Running state.
func (f *Future[T]) Completed() bool {
	return f.State() != Running
}

// Value returns the resolved value and true iff the Future is Done.
func (f *Future[T]) Value() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Done {
		return f.value, true
	}
	var zero T
	return zero, false
}

// Err returns the resolved error and true iff the Future is Failed.
func (f *Future[T]) Err() (error, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Failed {
		return f.err, true
	}
	return nil, false
}

// settle attempts a Running -> terminal transition with the given payload.
// The lock is held only to install the payload and snapshot callbacks;
// dispatch always happens after release, so a callback that installs
// further callbacks on this or another Future cannot deadlock.
func (f *Future[T]) settle(state State, value T, err error) bool {
	f.mu.Lock()
	if f.state != Running {
		f.mu.Unlock()
		return false
	}
	f.state = state
	f.value = value
	f.err = err
	entries := f.callbacks
	f.callbacks = nil
	f.mu.Unlock()

	f.dispatch(entries)
	return true
}

// trySetCancelResponder installs handler as the cancellation responder iff
// none has been installed yet (Invariant 6: at most one responder per
// Future; a second install is silently discarded).
func (f *Future[T]) trySetCancelResponder(handler func() *Future[struct{}]) {
	f.mu.Lock()
	if f.responderSet {
		f.mu.Unlock()
		return
	}
	f.responderSet = true
	f.cancelResponder = handler
	f.mu.Unlock()
}

// Cancel drives a Running Future to Cancelled, firing the cancellation
// responder (if any) and every installed completion callback. On an
// already-terminal Future it is a no-op whose returned Future resolves
// Done immediately. Repeated calls return the identical cancellation
// Future (S7): it is created lazily on the first call and memoized.
func (f *Future[T]) Cancel() *Future[struct{}] {
	f.mu.Lock()
	if f.cancelFuture != nil {
		cf := f.cancelFuture
		f.mu.Unlock()
		return cf
	}

	cf, cfResolve := New[struct{}]()
	f.cancelFuture = cf

	if f.state != Running {
		f.mu.Unlock()
		cfResolve.ResolveValue(struct{}{})
		return cf
	}

	f.state = Cancelled
	entries := f.callbacks
	f.callbacks = nil
	responder := f.cancelResponder
	f.mu.Unlock()

	f.dispatch(entries)

	if responder == nil {
		cfResolve.ResolveValue(struct{}{})
		return cf
	}

	responder().OnComplete(executor.Inline{}, func(rf *Future[struct{}]) {
		switch rf.State() {
		case Done:
			cfResolve.ResolveValue(struct{}{})
		case Failed:
			err, _ := rf.Err()
			cfResolve.ResolveError(err)
		case Cancelled:
			cfResolve.Cancel()
		}
	})
	return cf
}

// Cancellable is satisfied by every *Future[T], regardless of T, since
// Cancel's signature does not depend on the type parameter. Combinators use
// it to propagate cancellation upward without naming the upstream's type.
type Cancellable interface {
	Cancel() *Future[struct{}]
}

func bindCancelUpward[T any](d *Future[T], upstream Cancellable) {
	d.trySetCancelResponder(func() *Future[struct{}] {
		return upstream.Cancel()
	})
}

// mirror propagates u's terminal state onto resolve (same element type).
func mirror[T any](u *Future[T], resolve Resolvable[T]) {
	switch u.State() {
	case Done:
		v, _ := u.Value()
		resolve.ResolveValue(v)
	case Failed:
		err, _ := u.Err()
		resolve.ResolveError(err)
	case Cancelled:
		resolve.Cancel()
	}
}

// mirrorTerminal propagates u's Failed/Cancelled state onto resolve, for
// use by combinators whose output element type differs from the input's;
// the Done case is handled by the caller since it requires a value
// transform.
func mirrorTerminal[T, U any](u *Future[T], resolve Resolvable[U]) {
	switch u.State() {
	case Failed:
		err, _ := u.Err()
		resolve.ResolveError(err)
	case Cancelled:
		resolve.Cancel()
	}
}
