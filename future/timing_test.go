package future

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/zareefahmed/FBSimulatorControl/future/executor"
)

func TestDelay_ResolvesNoSoonerThanDurationAfterUpstream(t *testing.T) {
	clk := quartz.NewMock(t)
	upstream, resolve := New[int]()

	out := Delay(executor.Inline{}, clk, upstream, time.Second)
	resolve.ResolveValue(5)
	assert.False(t, out.Completed())

	clk.Advance(time.Second).MustWait(context.Background())
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestTimeout_MirrorsUpstreamWhenItCompletesInTime(t *testing.T) {
	clk := quartz.NewMock(t)
	upstream, resolve := New[int]()

	out := Timeout(executor.Inline{}, clk, upstream, time.Second, "deadline")
	resolve.ResolveValue(5)

	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestTimeout_FailsWithTimeoutErrorWhenDeadlineElapsesFirst(t *testing.T) {
	clk := quartz.NewMock(t)
	upstream, _ := New[int]()

	out := Timeout(executor.Inline{}, clk, upstream, time.Second, "deadline exceeded")
	clk.Advance(time.Second).MustWait(context.Background())

	err, ok := out.Err()
	assert.True(t, ok)
	assert.Equal(t, DomainTimeout, err.(*ErrorInfo).Domain)
	assert.Equal(t, Running, upstream.State())
}

func TestTimeoutAndCancel_CancelsUpstreamOnDeadline(t *testing.T) {
	clk := quartz.NewMock(t)
	upstream, _ := New[int]()

	TimeoutAndCancel(executor.Inline{}, clk, upstream, time.Second, "deadline exceeded")
	clk.Advance(time.Second).MustWait(context.Background())

	assert.Equal(t, Cancelled, upstream.State())
}
