package observe

import (
	"context"
	"log/slog"
)

// LogObserver emits structured diagnostics for retry events. A nil Logger
// disables emission entirely.
type LogObserver struct {
	Logger *slog.Logger
}

func (l LogObserver) OnBackoff(ctx context.Context, rec AttemptRecord) error {
	if l.Logger == nil {
		return nil
	}
	l.Logger.LogAttrs(ctx, slog.LevelInfo, "backing off",
		slog.String("target", rec.Target),
		slog.Int("tries", rec.Tries),
		slog.Duration("elapsed", rec.Elapsed),
		slog.Duration("wait", rec.Wait),
		slog.Any("error", rec.Err),
	)
	return nil
}

func (l LogObserver) OnGiveUp(ctx context.Context, rec AttemptRecord) error {
	if l.Logger == nil {
		return nil
	}
	l.Logger.LogAttrs(ctx, slog.LevelWarn, "giving up",
		slog.String("target", rec.Target),
		slog.Int("tries", rec.Tries),
		slog.Duration("elapsed", rec.Elapsed),
		slog.Any("error", rec.Err),
	)
	return nil
}

func (l LogObserver) OnSuccess(ctx context.Context, rec AttemptRecord) error {
	if l.Logger == nil || rec.Tries == 1 {
		// First-try successes are not worth a log line.
		return nil
	}
	l.Logger.LogAttrs(ctx, slog.LevelInfo, "succeeded after retries",
		slog.String("target", rec.Target),
		slog.Int("tries", rec.Tries),
		slog.Duration("elapsed", rec.Elapsed),
	)
	return nil
}
