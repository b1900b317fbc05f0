package future

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zareefahmed/FBSimulatorControl/future/executor"
)

func TestRespondToCancellation_HandlerFiresOnUpstreamCancel(t *testing.T) {
	upstream, resolve := New[int]()
	var handlerCalled bool
	out := RespondToCancellation(executor.Inline{}, upstream, func() *Future[struct{}] {
		handlerCalled = true
		return Value(struct{}{})
	})

	resolve.Cancel()
	assert.True(t, handlerCalled)
	assert.Equal(t, Cancelled, out.State())
}

func TestRespondToCancellation_OnlyTheFirstInstalledHandlerFires(t *testing.T) {
	upstream, resolve := New[int]()
	var first, second bool
	RespondToCancellation(executor.Inline{}, upstream, func() *Future[struct{}] {
		first = true
		return Value(struct{}{})
	})
	RespondToCancellation(executor.Inline{}, upstream, func() *Future[struct{}] {
		second = true
		return Value(struct{}{})
	})

	resolve.Cancel()
	assert.True(t, first)
	assert.False(t, second)
}

func TestRespondToCancellation_MirrorsDoneUpstream(t *testing.T) {
	upstream := Value(3)
	out := RespondToCancellation(executor.Inline{}, upstream, func() *Future[struct{}] {
		return Value(struct{}{})
	})
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestRespondToCancellation_CancellingDownstreamCancelsUpstream(t *testing.T) {
	upstream, _ := New[int]()
	out := RespondToCancellation(executor.Inline{}, upstream, func() *Future[struct{}] {
		return Value(struct{}{})
	})

	out.Cancel()
	assert.Equal(t, Cancelled, upstream.State())
}
