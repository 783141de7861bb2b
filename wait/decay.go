package wait

import "time"

type decayConfig struct {
	factor float64
	floor  time.Duration
}

// DecayOption configures a Decay schedule.
type DecayOption func(*decayConfig)

// DecayFactor sets the per-step scale, in (0, 1]. Default: 0.5.
func DecayFactor(f float64) DecayOption {
	return func(c *decayConfig) {
		c.factor = f
	}
}

// DecayFloor sets the minimum wait the series decays towards. Default: 0.
func DecayFloor(d time.Duration) DecayOption {
	return func(c *decayConfig) {
		c.floor = d
	}
}

// Decay returns a schedule that starts at initial and scales down by the
// decay factor each step, never going below the floor.
func Decay(initial time.Duration, opts ...DecayOption) (Schedule, error) {
	cfg := decayConfig{
		factor: 0.5,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if initial <= 0 {
		return nil, ErrInvalidInitial
	}
	if cfg.factor <= 0 || cfg.factor > 1 {
		return nil, ErrInvalidFactor
	}
	if cfg.floor < 0 {
		return nil, ErrInvalidFloor
	}

	return func() Sequence {
		cur := float64(initial)
		return func() time.Duration {
			out := time.Duration(cur)
			if out < cfg.floor {
				return cfg.floor
			}
			cur *= cfg.factor
			return out
		}
	}, nil
}
