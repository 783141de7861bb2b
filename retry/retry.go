// Package retry wraps an operation with a configurable retry policy: a wait
// schedule, jitter, stop conditions, and classification of each attempt's
// outcome as success, retryable failure, or fatal failure.
//
// Two classification modes exist. Exception mode (OnError) retries while the
// operation returns retryable errors. Predicate mode (OnValue) retries while
// the operation's returned value is unsatisfactory; errors are never retried
// in that mode. Either way the wrapped operation keeps the original's
// signature and runs the full attempt loop per invocation.
package retry

import (
	"context"
	"reflect"
	"runtime"
	"time"

	"github.com/aponysus/reprise/classify"
	"github.com/aponysus/reprise/jitter"
	"github.com/aponysus/reprise/observe"
	"github.com/aponysus/reprise/wait"
)

// Operation is the unit of work being retried.
type Operation[T any] func(ctx context.Context) (T, error)

// WaitFunc computes the next wait from the attempt that just concluded.
type WaitFunc func(rec observe.AttemptRecord) time.Duration

type mode int

const (
	modeError mode = iota
	modeValue
)

// Controller drives the attempt loop for one wrapped operation. It holds no
// call state: every invocation builds its own wait sequence and records, so
// concurrent calls through the same controller are independent.
type Controller[T any] struct {
	op      Operation[T]
	retryIf func(T) bool
	mode    mode
	cfg     config
}

// OnError wraps op in exception mode: retryable errors drive the retry loop,
// non-retryable errors propagate unchanged after a single attempt.
// Configuration problems are rejected here, before first use.
func OnError[T any](op Operation[T], opts ...Option) (Operation[T], error) {
	c, err := newController(op, nil, modeError, opts)
	if err != nil {
		return nil, err
	}
	return c.Call, nil
}

// OnValue wraps op in predicate mode: while retryIf reports the returned
// value as unsatisfactory the loop continues, subject to the stop
// conditions. Errors from op propagate immediately and are never retried.
// On exhaustion the last unsatisfactory value is returned with a nil error.
func OnValue[T any](op Operation[T], retryIf func(T) bool, opts ...Option) (Operation[T], error) {
	c, err := newController(op, retryIf, modeValue, opts)
	if err != nil {
		return nil, err
	}
	return c.Call, nil
}

// Do wraps an error-only operation in exception mode and runs it once.
func Do(ctx context.Context, op func(ctx context.Context) error, opts ...Option) error {
	wrapped, err := OnError(func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, opts...)
	if err != nil {
		return err
	}
	_, err = wrapped(ctx)
	return err
}

// DoValue wraps op in exception mode and runs it once.
func DoValue[T any](ctx context.Context, op Operation[T], opts ...Option) (T, error) {
	wrapped, err := OnError(op, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return wrapped(ctx)
}

func newController[T any](op Operation[T], retryIf func(T) bool, m mode, opts []Option) (*Controller[T], error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if cfg.schedule == nil && cfg.waitFunc == nil {
		s, err := wait.Exponential()
		if err != nil {
			return nil, err
		}
		cfg.schedule = s
	}
	if !cfg.jitterSet {
		cfg.jitter = jitter.Full()
	}
	if cfg.classifier == nil {
		cfg.classifier = classify.AlwaysRetry{}
	}
	if cfg.sleeper == nil {
		cfg.sleeper = TimerSleeper{}
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}
	if cfg.target == "" {
		cfg.target = funcName(op)
	}
	if cfg.logger != nil {
		lo := observe.LogObserver{Logger: cfg.logger}
		cfg.onBackoff = append(cfg.onBackoff, lo.OnBackoff)
		cfg.onGiveUp = append(cfg.onGiveUp, lo.OnGiveUp)
		cfg.onSuccess = append(cfg.onSuccess, lo.OnSuccess)
	}

	return &Controller[T]{op: op, retryIf: retryIf, mode: m, cfg: cfg}, nil
}

// Call runs the full attempt loop and returns only on terminal success or
// terminal failure. Attempts are strictly sequential.
func (c *Controller[T]) Call(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := &c.cfg

	// Stop-condition bounds resolve once per call.
	var maxTries int
	if cfg.maxTries != nil {
		maxTries = cfg.maxTries()
	}
	var maxTime time.Duration
	if cfg.maxTime != nil {
		maxTime = cfg.maxTime()
	}

	// A fresh sequence per call: schedules reset per invocation, never
	// leaking state across calls.
	var seq wait.Sequence
	if cfg.waitFunc == nil {
		seq = cfg.schedule()
	}

	start := cfg.clock()

	var last T
	var lastErr error

	for tries := 1; ; tries++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		val, err := c.op(ctx)
		last, lastErr = val, err

		rec := observe.AttemptRecord{
			Target:  cfg.target,
			Tries:   tries,
			Elapsed: cfg.clock().Sub(start),
		}

		var out classify.Outcome
		if c.mode == modeValue {
			if err != nil {
				// Errors are never retried in predicate mode.
				return val, err
			}
			rec.Value = val
			if c.retryIf != nil && c.retryIf(val) {
				out = classify.Outcome{Kind: classify.OutcomeRetryable, Reason: "unsatisfactory_value"}
			} else {
				out = classify.Outcome{Kind: classify.OutcomeSuccess, Reason: "success"}
			}
		} else {
			rec.Err = err
			out = cfg.classifier.Classify(val, err)
		}

		switch out.Kind {
		case classify.OutcomeSuccess:
			if herr := runHandlers(ctx, cfg.onSuccess, rec); herr != nil {
				return val, herr
			}
			return val, nil
		case classify.OutcomeRetryable:
			// fall through to stop-condition evaluation
		default:
			// Non-retryable: propagate unchanged, no handlers fire.
			return last, lastErr
		}

		if c.mode == modeError && cfg.giveUp != nil && cfg.giveUp(err) {
			return c.giveUp(ctx, rec, last, lastErr)
		}
		if maxTries > 0 && tries >= maxTries {
			return c.giveUp(ctx, rec, last, lastErr)
		}
		if maxTime > 0 && rec.Elapsed >= maxTime {
			return c.giveUp(ctx, rec, last, lastErr)
		}

		var w time.Duration
		if cfg.waitFunc != nil {
			w = cfg.waitFunc(rec)
		} else {
			w = seq()
		}
		if cfg.jitter != nil {
			w = cfg.jitter(w)
		}
		if w < 0 {
			w = 0
		}
		if maxTime > 0 {
			// Never sleep past the remaining time budget.
			if remain := maxTime - rec.Elapsed; w > remain {
				w = remain
			}
		}
		rec.Wait = w

		if herr := runHandlers(ctx, cfg.onBackoff, rec); herr != nil {
			return last, herr
		}
		if serr := cfg.sleeper.Sleep(ctx, w); serr != nil {
			return last, serr
		}
	}
}

// giveUp fires give-up handlers and produces the terminal result: the last
// error in exception mode, the last unsatisfactory value (with a nil error)
// in predicate mode.
func (c *Controller[T]) giveUp(ctx context.Context, rec observe.AttemptRecord, last T, lastErr error) (T, error) {
	if herr := runHandlers(ctx, c.cfg.onGiveUp, rec); herr != nil {
		return last, herr
	}
	if c.mode == modeValue {
		return last, nil
	}
	return last, lastErr
}

func runHandlers(ctx context.Context, hs []observe.Handler, rec observe.AttemptRecord) error {
	for _, h := range hs {
		if err := h(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	if f := runtime.FuncForPC(pc); f != nil {
		return f.Name()
	}
	return "unknown"
}
