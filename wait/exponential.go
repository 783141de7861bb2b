package wait

import (
	"math"
	"time"
)

type expoConfig struct {
	base   time.Duration
	factor float64
	cap    time.Duration
	capSet bool
}

// ExpoOption configures an Exponential schedule.
type ExpoOption func(*expoConfig)

// ExpoBase sets the first wait of the series. Default: DefaultInterval.
func ExpoBase(d time.Duration) ExpoOption {
	return func(c *expoConfig) {
		c.base = d
	}
}

// ExpoFactor sets the per-step multiplier. Default: 2.
func ExpoFactor(f float64) ExpoOption {
	return func(c *expoConfig) {
		c.factor = f
	}
}

// ExpoCap bounds the series. Once the cap is reached the sequence yields the
// cap forever.
func ExpoCap(d time.Duration) ExpoOption {
	return func(c *expoConfig) {
		c.cap = d
		c.capSet = true
	}
}

// Exponential returns a schedule that starts at the base value and multiplies
// by the factor each step. Growth past the cap (or past the representable
// duration range, when uncapped) clamps instead of overflowing.
func Exponential(opts ...ExpoOption) (Schedule, error) {
	cfg := expoConfig{
		base:   DefaultInterval,
		factor: 2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capSet && cfg.cap <= 0 {
		return nil, ErrInvalidCap
	}
	if cfg.factor <= 0 {
		return nil, ErrInvalidFactor
	}
	if cfg.base <= 0 {
		return nil, ErrInvalidInitial
	}

	return func() Sequence {
		next := float64(cfg.base)
		return func() time.Duration {
			cur := next
			next *= cfg.factor

			if cfg.capSet && cur >= float64(cfg.cap) {
				return cfg.cap
			}
			if cur > maxDurationFloat {
				// Uncapped overflow clamps rather than wrapping.
				return time.Duration(math.MaxInt64)
			}
			return time.Duration(cur)
		}
	}, nil
}
