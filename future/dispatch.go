package future

import "github.com/zareefahmed/FBSimulatorControl/future/executor"

// OnComplete installs cb to be invoked with f once f is terminal, on ctx.
// If f is already terminal, cb is scheduled on ctx immediately rather than
// called inline, so installing a callback never reenters the installing
// goroutine unless ctx is executor.Inline{}. Returns f for chaining.
//
// Callbacks installed before the terminal transition fire in installation
// order (each is handed to its own ctx.Execute call in that order); dispatch
// across distinct contexts is independent.
func (f *Future[T]) OnComplete(ctx executor.ExecutionContext, cb func(*Future[T])) *Future[T] {
	f.mu.Lock()
	if f.state != Running {
		f.mu.Unlock()
		ctx.Execute(func() { cb(f) })
		return f
	}
	f.callbacks = append(f.callbacks, callbackEntry[T]{ctx: ctx, cb: cb})
	f.mu.Unlock()
	return f
}

// dispatch schedules every entry's callback on its own context, in
// installation order. Must be called outside f.mu.
func (f *Future[T]) dispatch(entries []callbackEntry[T]) {
	for _, e := range entries {
		e := e
		e.ctx.Execute(func() { e.cb(f) })
	}
}
