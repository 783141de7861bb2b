package retry

import (
	"log/slog"
	"time"

	"github.com/aponysus/reprise/classify"
	"github.com/aponysus/reprise/internal"
	"github.com/aponysus/reprise/jitter"
	"github.com/aponysus/reprise/observe"
	"github.com/aponysus/reprise/wait"
)

type config struct {
	schedule   wait.Schedule
	waitFunc   WaitFunc
	jitter     jitter.Jitter
	jitterSet  bool
	maxTries   func() int
	maxTime    func() time.Duration
	giveUp     func(error) bool
	classifier classify.Classifier
	onSuccess  []observe.Handler
	onBackoff  []observe.Handler
	onGiveUp   []observe.Handler
	logger     *slog.Logger
	sleeper    Sleeper
	target     string
	clock      func() time.Time

	// err holds the first configuration error; wrapping fails with it.
	err error
}

// Option configures a wrapped operation.
type Option func(*config)

func (c *config) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// WithSchedule sets the wait schedule. Default: wait.Exponential with its
// defaults.
func WithSchedule(s wait.Schedule) Option {
	return func(c *config) {
		if s != nil {
			c.schedule = s
		}
	}
}

// WithWaitFunc computes the next wait from the record of the attempt just
// made (for example a Retry-After hint carried by the failed result) instead
// of from a fixed schedule. Jitter still applies afterwards.
func WithWaitFunc(f WaitFunc) Option {
	return func(c *config) {
		c.waitFunc = f
	}
}

// WithJitter sets the jitter transform. Passing nil disables jitter so the
// raw schedule value is used. Default: jitter.Full().
func WithJitter(j jitter.Jitter) Option {
	return func(c *config) {
		c.jitter = j
		c.jitterSet = true
	}
}

// WithMaxTries bounds the total number of attempts. Zero or negative means
// unbounded.
func WithMaxTries(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxTries = func() int { return n }
		} else {
			c.maxTries = nil
		}
	}
}

// WithMaxTriesFunc is WithMaxTries with the bound resolved once per call.
func WithMaxTriesFunc(f func() int) Option {
	return func(c *config) {
		c.maxTries = f
	}
}

// WithMaxTime bounds total elapsed time across attempts. Zero or negative
// means unbounded. The bound is advisory: it is checked between attempts and
// never interrupts an in-flight operation.
func WithMaxTime(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.maxTime = func() time.Duration { return d }
		} else {
			c.maxTime = nil
		}
	}
}

// WithMaxTimeFunc is WithMaxTime with the bound resolved once per call.
func WithMaxTimeFunc(f func() time.Duration) Option {
	return func(c *config) {
		c.maxTime = f
	}
}

// WithGiveUp aborts retrying as soon as pred returns true for a retryable
// error. The error still propagates unchanged, and give-up handlers fire.
// Exception mode only.
func WithGiveUp(pred func(error) bool) Option {
	return func(c *config) {
		c.giveUp = pred
	}
}

// WithClassifier overrides how errors are classified in exception mode.
// Default: classify.AlwaysRetry.
func WithClassifier(cl classify.Classifier) Option {
	return func(c *config) {
		if cl != nil {
			c.classifier = cl
		}
	}
}

// WithRetryable retries only errors matching one of targets under errors.Is;
// any other error propagates after a single attempt. Shorthand for
// WithClassifier(classify.ErrorIs(targets...)).
func WithRetryable(targets ...error) Option {
	return WithClassifier(classify.ErrorIs(targets...))
}

// WithOnSuccess appends handlers invoked once on terminal success.
func WithOnSuccess(hs ...observe.Handler) Option {
	return func(c *config) {
		c.onSuccess = appendHandlers(c.onSuccess, hs)
	}
}

// WithOnBackoff appends handlers invoked before each backoff wait.
func WithOnBackoff(hs ...observe.Handler) Option {
	return func(c *config) {
		c.onBackoff = appendHandlers(c.onBackoff, hs)
	}
}

// WithOnGiveUp appends handlers invoked once when retrying is given up.
func WithOnGiveUp(hs ...observe.Handler) Option {
	return func(c *config) {
		c.onGiveUp = appendHandlers(c.onGiveUp, hs)
	}
}

// WithObserver subscribes obs to all three lifecycle events.
func WithObserver(obs ...observe.Observer) Option {
	return func(c *config) {
		for _, o := range obs {
			if internal.IsTypedNil(o) {
				continue
			}
			c.onBackoff = append(c.onBackoff, o.OnBackoff)
			c.onGiveUp = append(c.onGiveUp, o.OnGiveUp)
			c.onSuccess = append(c.onSuccess, o.OnSuccess)
		}
	}
}

// WithLogger enables built-in diagnostic emission through logger. Nil leaves
// emission disabled (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithSleeper sets the backoff driver. Default: TimerSleeper.
func WithSleeper(s Sleeper) Option {
	return func(c *config) {
		if s != nil {
			c.sleeper = s
		}
	}
}

// WithBlockingSleep selects the thread-blocking driver. Shorthand for
// WithSleeper(BlockingSleeper{}).
func WithBlockingSleep() Option {
	return WithSleeper(BlockingSleeper{})
}

// WithTarget names the wrapped operation in records, logs, and metrics.
// Default: the operation's function name.
func WithTarget(name string) Option {
	return func(c *config) {
		c.target = name
	}
}

// WithClock overrides the time source used for elapsed-time accounting.
func WithClock(f func() time.Time) Option {
	return func(c *config) {
		if f != nil {
			c.clock = f
		}
	}
}

func appendHandlers(dst []observe.Handler, hs []observe.Handler) []observe.Handler {
	for _, h := range hs {
		if internal.IsTypedNil(h) {
			continue
		}
		dst = append(dst, h)
	}
	return dst
}
