// Package policy defines declarative retry policy documents. A Policy names
// a wait schedule, stop conditions, jitter, and a classifier, can be loaded
// from YAML, and is applied to a controller with retry.WithPolicy.
package policy

import (
	"time"

	"github.com/aponysus/reprise/jitter"
	"github.com/aponysus/reprise/wait"
)

// ScheduleKind names a wait-schedule formula.
type ScheduleKind string

const (
	ScheduleConstant    ScheduleKind = "constant"
	ScheduleExponential ScheduleKind = "exponential"
	ScheduleFibonacci   ScheduleKind = "fibonacci"
	ScheduleDecay       ScheduleKind = "decay"
)

// JitterKind names a jitter transform.
type JitterKind string

const (
	JitterNone   JitterKind = "none"
	JitterFull   JitterKind = "full"
	JitterRandom JitterKind = "random"
)

// ScheduleSpec is the declarative form of a wait schedule: a kind plus the
// numeric parameters that kind understands. Unused parameters are ignored.
type ScheduleSpec struct {
	Kind ScheduleKind `yaml:"kind"`

	// constant
	Interval Duration `yaml:"interval,omitempty"`

	// exponential
	Base   Duration `yaml:"base,omitempty"`
	Factor float64  `yaml:"factor,omitempty"`

	// fibonacci
	Unit Duration `yaml:"unit,omitempty"`

	// decay
	Initial Duration `yaml:"initial,omitempty"`
	Floor   Duration `yaml:"floor,omitempty"`

	// exponential and fibonacci
	Cap Duration `yaml:"cap,omitempty"`
}

// Policy is one call site's complete retry policy.
type Policy struct {
	Schedule       ScheduleSpec `yaml:"schedule"`
	MaxTries       int          `yaml:"max_tries,omitempty"`
	MaxTime        Duration     `yaml:"max_time,omitempty"`
	Jitter         JitterKind   `yaml:"jitter,omitempty"`
	JitterFraction float64      `yaml:"jitter_fraction,omitempty"`
	Classifier     string       `yaml:"classifier,omitempty"`
}

// Normalize fills defaults and rejects invalid enum values. Numeric bounds
// are validated later by the wait constructors, at schedule build time.
func (p Policy) Normalize() (Policy, error) {
	out := p

	switch out.Schedule.Kind {
	case "":
		out.Schedule.Kind = ScheduleExponential
	case ScheduleConstant, ScheduleExponential, ScheduleFibonacci, ScheduleDecay:
	default:
		return Policy{}, &NormalizeError{Field: "schedule.kind", Value: string(out.Schedule.Kind)}
	}

	switch out.Jitter {
	case "":
		out.Jitter = JitterFull
	case JitterNone, JitterFull, JitterRandom:
	default:
		return Policy{}, &NormalizeError{Field: "jitter", Value: string(out.Jitter)}
	}

	if out.Jitter == JitterRandom && out.JitterFraction <= 0 {
		out.JitterFraction = 0.5
	}
	if out.MaxTries < 0 {
		out.MaxTries = 0
	}
	if out.MaxTime < 0 {
		out.MaxTime = 0
	}

	return out, nil
}

// BuildSchedule constructs the wait schedule the document describes. Invalid
// numeric parameters surface as wait package errors.
func (s ScheduleSpec) BuildSchedule() (wait.Schedule, error) {
	switch s.Kind {
	case ScheduleConstant:
		var opts []wait.ConstantOption
		if s.Cap != 0 {
			opts = append(opts, wait.ConstantCap(s.Cap.Std()))
		}
		return wait.Constant(s.Interval.Std(), opts...)
	case ScheduleFibonacci:
		var opts []wait.FiboOption
		if s.Unit != 0 {
			opts = append(opts, wait.FiboUnit(s.Unit.Std()))
		}
		if s.Cap != 0 {
			opts = append(opts, wait.FiboCap(s.Cap.Std()))
		}
		return wait.Fibonacci(opts...)
	case ScheduleDecay:
		var opts []wait.DecayOption
		if s.Factor != 0 {
			opts = append(opts, wait.DecayFactor(s.Factor))
		}
		if s.Floor != 0 {
			opts = append(opts, wait.DecayFloor(s.Floor.Std()))
		}
		initial := s.Initial.Std()
		if initial == 0 {
			initial = time.Second
		}
		return wait.Decay(initial, opts...)
	case ScheduleExponential, "":
		var opts []wait.ExpoOption
		if s.Base != 0 {
			opts = append(opts, wait.ExpoBase(s.Base.Std()))
		}
		if s.Factor != 0 {
			opts = append(opts, wait.ExpoFactor(s.Factor))
		}
		if s.Cap != 0 {
			opts = append(opts, wait.ExpoCap(s.Cap.Std()))
		}
		return wait.Exponential(opts...)
	default:
		return nil, &NormalizeError{Field: "schedule.kind", Value: string(s.Kind)}
	}
}

// BuildJitter constructs the jitter transform for a normalized policy. A nil
// return means the raw schedule value is used unmodified.
func (p Policy) BuildJitter() jitter.Jitter {
	switch p.Jitter {
	case JitterFull:
		return jitter.Full()
	case JitterRandom:
		return jitter.Random(p.JitterFraction)
	default:
		return nil
	}
}
