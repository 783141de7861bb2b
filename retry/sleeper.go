package retry

import (
	"context"
	"time"
)

// Sleeper realizes the backoff wait between attempts. Implementations decide
// whether the wait blocks the calling goroutine outright or cooperates with
// the scheduler and the call's context.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a plain function to the Sleeper interface.
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper waits on a timer while honoring context cancellation. It is
// the default driver: the goroutine parks and the runtime is free to run
// other work, and a canceled context cuts the wait short.
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BlockingSleeper waits with time.Sleep. The wait cannot be interrupted, not
// even by context cancellation; use it when the call site owns its thread of
// execution for the full retry lifetime.
type BlockingSleeper struct{}

func (BlockingSleeper) Sleep(_ context.Context, d time.Duration) error {
	if d > 0 {
		time.Sleep(d)
	}
	return nil
}
