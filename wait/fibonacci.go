package wait

import (
	"math"
	"time"
)

type fiboConfig struct {
	unit   time.Duration
	cap    time.Duration
	capSet bool
}

// FiboOption configures a Fibonacci schedule.
type FiboOption func(*fiboConfig)

// FiboUnit scales the 1,1 seed of the series. Default: DefaultInterval.
func FiboUnit(d time.Duration) FiboOption {
	return func(c *fiboConfig) {
		c.unit = d
	}
}

// FiboCap bounds the series. Once a term exceeds the cap the sequence yields
// the cap forever and stops growing its internal terms.
func FiboCap(d time.Duration) FiboOption {
	return func(c *fiboConfig) {
		c.cap = d
		c.capSet = true
	}
}

// Fibonacci returns a schedule where each wait is the sum of the previous
// two, seeded with one unit each.
func Fibonacci(opts ...FiboOption) (Schedule, error) {
	cfg := fiboConfig{
		unit: DefaultInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capSet && cfg.cap <= 0 {
		return nil, ErrInvalidCap
	}
	if cfg.unit <= 0 {
		return nil, ErrInvalidInitial
	}

	return func() Sequence {
		a, b := cfg.unit, cfg.unit
		saturated := false
		return func() time.Duration {
			if cfg.capSet && a >= cfg.cap {
				// Constant-at-cap mode: no further term growth.
				return cfg.cap
			}
			if saturated {
				return time.Duration(math.MaxInt64)
			}
			out := a
			if b > math.MaxInt64-a {
				saturated = true
			} else {
				a, b = b, a+b
			}
			return out
		}
	}, nil
}
