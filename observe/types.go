// Package observe carries per-attempt facts to event handlers and observers.
package observe

import (
	"context"
	"time"
)

// AttemptRecord is the ephemeral record of a single attempt. It is built
// fresh for each attempt, passed by value, and discarded when the attempt
// concludes. In Go the wrapped operation's call arguments are captured by
// its closure, so the record identifies the call site by Target instead.
type AttemptRecord struct {
	// Target identifies the wrapped operation (configured name or the
	// operation's function name).
	Target string

	// Tries is the 1-based attempt index.
	Tries int

	// Elapsed is wall-clock time since the first attempt began.
	Elapsed time.Duration

	// Wait is the computed backoff before the next attempt. Set only for
	// backoff events.
	Wait time.Duration

	// Value is the operation's return value. Set in predicate mode.
	Value any

	// Err is the caught error. Set in exception mode.
	Err error
}

// Handler is invoked at a retry-loop transition. Handlers run to completion
// before the loop proceeds and are deliberately unguarded: a handler error
// propagates and terminates the whole call.
type Handler func(ctx context.Context, rec AttemptRecord) error

// Observer groups the three lifecycle events of one call. Implementations
// can embed BaseObserver and override only what they need.
type Observer interface {
	OnBackoff(ctx context.Context, rec AttemptRecord) error
	OnGiveUp(ctx context.Context, rec AttemptRecord) error
	OnSuccess(ctx context.Context, rec AttemptRecord) error
}

// BaseObserver implements Observer with no-op methods.
type BaseObserver struct{}

func (BaseObserver) OnBackoff(context.Context, AttemptRecord) error { return nil }
func (BaseObserver) OnGiveUp(context.Context, AttemptRecord) error  { return nil }
func (BaseObserver) OnSuccess(context.Context, AttemptRecord) error { return nil }

// NoopObserver discards all events.
type NoopObserver struct{ BaseObserver }

// MultiObserver fans out events to multiple observers in order. The first
// error stops the fan-out and propagates.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnBackoff(ctx context.Context, rec AttemptRecord) error {
	for _, o := range m.Observers {
		if o == nil {
			continue
		}
		if err := o.OnBackoff(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiObserver) OnGiveUp(ctx context.Context, rec AttemptRecord) error {
	for _, o := range m.Observers {
		if o == nil {
			continue
		}
		if err := o.OnGiveUp(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiObserver) OnSuccess(ctx context.Context, rec AttemptRecord) error {
	for _, o := range m.Observers {
		if o == nil {
			continue
		}
		if err := o.OnSuccess(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
