// Package clock re-exports quartz.Clock as the time source for combinators
// that need to schedule or measure time (Delay, Timeout, TimeoutAndCancel,
// ResolveWhen), so tests can inject quartz.NewMock(t) for deterministic
// timer/ticker behavior instead of sleeping real wall-clock time.
package clock

import "github.com/coder/quartz"

// Clock is the time source used by timing combinators.
type Clock = quartz.Clock

// NewReal returns the wall-clock implementation.
func NewReal() Clock { return quartz.NewReal() }
