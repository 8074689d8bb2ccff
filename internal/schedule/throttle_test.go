package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThrottleAllowsOncePerWindow(t *testing.T) {
	th := NewThrottle(16 * time.Millisecond)
	base := time.Unix(0, 0)

	require.True(t, th.Allow(base))
	require.False(t, th.Allow(base.Add(5*time.Millisecond)))
	require.False(t, th.Allow(base.Add(15*time.Millisecond)))
	require.True(t, th.Pending())
	require.True(t, th.Allow(base.Add(16*time.Millisecond)))
	require.False(t, th.Pending())
}

func TestThrottleFlushRunsDroppedCallOnce(t *testing.T) {
	th := NewThrottle(16 * time.Millisecond)
	base := time.Unix(0, 0)

	require.True(t, th.Allow(base))
	require.False(t, th.Flush(base.Add(20*time.Millisecond)), "nothing dropped yet")

	require.True(t, th.Allow(base.Add(20*time.Millisecond)))
	require.False(t, th.Allow(base.Add(25*time.Millisecond)))
	require.False(t, th.Flush(base.Add(30*time.Millisecond)), "window still open")
	require.True(t, th.Flush(base.Add(36*time.Millisecond)))
	require.False(t, th.Flush(base.Add(60*time.Millisecond)), "pending consumed")
}

func TestThrottleZeroIntervalAdmitsEverything(t *testing.T) {
	th := NewThrottle(0)
	now := time.Now()
	for i := 0; i < 3; i++ {
		require.True(t, th.Allow(now))
	}
	require.False(t, th.Pending())

	var nilThrottle *Throttle
	require.True(t, nilThrottle.Allow(now))
}

func TestThrottleWaitHonoursContext(t *testing.T) {
	th := NewThrottle(time.Hour)
	require.NoError(t, th.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, th.Wait(ctx), context.Canceled)
}

func TestDebouncerOnlyLatestFires(t *testing.T) {
	d := NewDebouncer(250 * time.Millisecond)
	first := d.Trigger()
	second := d.Trigger()
	require.False(t, d.Fire(first))
	require.True(t, d.Fire(second))
}
