package wait

import "time"

type constantConfig struct {
	jitter func(time.Duration) time.Duration
	cap    time.Duration
	capSet bool
}

// ConstantOption configures a Constant schedule.
type ConstantOption func(*constantConfig)

// ConstantJitter randomizes each produced value with j before capping.
func ConstantJitter(j func(time.Duration) time.Duration) ConstantOption {
	return func(c *constantConfig) {
		c.jitter = j
	}
}

// ConstantCap bounds each produced value after jitter is applied.
func ConstantCap(d time.Duration) ConstantOption {
	return func(c *constantConfig) {
		c.cap = d
		c.capSet = true
	}
}

// Constant returns a schedule that repeats interval forever. A non-positive
// interval falls back to DefaultInterval.
func Constant(interval time.Duration, opts ...ConstantOption) (Schedule, error) {
	cfg := constantConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capSet && cfg.cap <= 0 {
		return nil, ErrInvalidCap
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	return func() Sequence {
		return func() time.Duration {
			out := interval
			if cfg.jitter != nil {
				out = cfg.jitter(out)
			}
			if out < 0 {
				out = 0
			}
			if cfg.capSet && out > cfg.cap {
				out = cfg.cap
			}
			return out
		}
	}, nil
}
