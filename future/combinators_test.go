package future

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zareefahmed/FBSimulatorControl/future/executor"
)

func TestMap_TransformsDoneValue(t *testing.T) {
	out := Map(executor.Inline{}, Value(3), func(v int) int { return v * 2 })
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, 6, v)
}

func TestMap_MirrorsFailedUpstreamWithoutCallingFn(t *testing.T) {
	err := &ErrorInfo{Domain: DomainUser, Code: 1}
	called := false
	out := Map(executor.Inline{}, Errorf[int](err), func(v int) int {
		called = true
		return v
	})
	assert.False(t, called)
	gotErr, ok := out.Err()
	assert.True(t, ok)
	assert.Equal(t, err, gotErr)
}

func TestMap_CancelPropagatesUpstream(t *testing.T) {
	upstream, _ := New[int]()
	out := Map(executor.Inline{}, upstream, func(v int) int { return v })

	out.Cancel()
	assert.Equal(t, Cancelled, upstream.State())
}

func TestFlatMap_ChainsToInnerFutureOnDone(t *testing.T) {
	out := FlatMap(executor.Inline{}, Value(2), func(v int) (*Future[string], error) {
		return Value("got 2"), nil
	})
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, "got 2", v)
}

func TestFlatMap_SynchronousErrorFailsDownstreamImmediately(t *testing.T) {
	failure := &ErrorInfo{Domain: DomainUser, Code: 2}
	out := FlatMap(executor.Inline{}, Value(1), func(v int) (*Future[string], error) {
		return nil, failure
	})
	err, ok := out.Err()
	assert.True(t, ok)
	assert.Equal(t, failure, err)
}

func TestFlatMap_CancelTargetsCurrentInnerProducer(t *testing.T) {
	outer := Value(1)
	var inner *Future[string]
	out := FlatMap(executor.Inline{}, outer, func(v int) (*Future[string], error) {
		inner, _ = New[string]()
		return inner, nil
	})

	out.Cancel()
	assert.Equal(t, Cancelled, inner.State())
}

func TestChain_CancelledUpstreamSkipsGAndCancelsDownstream(t *testing.T) {
	upstream, resolve := New[int]()
	called := false
	out := Chain(executor.Inline{}, upstream, func(u *Future[int]) (*Future[string], error) {
		called = true
		return Value("unused"), nil
	})

	resolve.Cancel()
	assert.False(t, called)
	assert.Equal(t, Cancelled, out.State())
}

func TestChain_TranslatesFailureIntoSuccess(t *testing.T) {
	upstream := Errorf[int](&ErrorInfo{Domain: DomainUser})
	out := Chain(executor.Inline{}, upstream, func(u *Future[int]) (*Future[string], error) {
		if _, failed := u.Err(); failed {
			return Value("recovered"), nil
		}
		return Value("not reached"), nil
	})
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, "recovered", v)
}

func TestFallback_SuppliesValueOnFailure(t *testing.T) {
	out := Fallback(executor.Inline{}, Errorf[int](&ErrorInfo{Domain: DomainUser}), 99)
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestFallback_MirrorsDoneUpstreamUnchanged(t *testing.T) {
	out := Fallback(executor.Inline{}, Value(1), 99)
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestFallback_MirrorsCancelledUpstream(t *testing.T) {
	upstream, resolve := New[int]()
	out := Fallback(executor.Inline{}, upstream, 99)
	resolve.Cancel()
	assert.Equal(t, Cancelled, out.State())
}

func TestReplace_AdoptsOtherOnDoneUpstream(t *testing.T) {
	other, otherResolve := New[string]()
	out := Replace(executor.Inline{}, Value(1), other)
	assert.False(t, out.Completed())

	otherResolve.ResolveValue("replaced")
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, "replaced", v)
}

func TestReplace_MirrorsFailedUpstreamWithoutConsultingOther(t *testing.T) {
	failure := &ErrorInfo{Domain: DomainUser}
	other := Value("unused")
	out := Replace(executor.Inline{}, Errorf[int](failure), other)
	err, ok := out.Err()
	assert.True(t, ok)
	assert.Equal(t, failure, err)
}
