package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerSleeper_CompletesShortWait(t *testing.T) {
	err := TimerSleeper{}.Sleep(context.Background(), 5*time.Millisecond)
	require.NoError(t, err)
}

func TestTimerSleeper_ZeroWaitReturnsImmediately(t *testing.T) {
	start := time.Now()
	require.NoError(t, TimerSleeper{}.Sleep(context.Background(), 0))
	require.NoError(t, TimerSleeper{}.Sleep(context.Background(), -time.Second))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestTimerSleeper_CancellationCutsWaitShort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := TimerSleeper{}.Sleep(ctx, 5*time.Second)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestBlockingSleeper_IgnoresContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := BlockingSleeper{}.Sleep(ctx, 5*time.Millisecond)
	require.NoError(t, err, "the blocking driver cannot be interrupted")
}

func TestSleeperFunc_Adapts(t *testing.T) {
	var got time.Duration
	s := SleeperFunc(func(_ context.Context, d time.Duration) error {
		got = d
		return nil
	})
	require.NoError(t, s.Sleep(context.Background(), 3*time.Second))
	assert.Equal(t, 3*time.Second, got)
}
