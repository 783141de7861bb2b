// Package wait provides generators for backoff wait schedules.
//
// A Schedule is a restartable description of a wait series; starting it
// yields a Sequence, a stateful iterator producing successive non-negative
// durations. The retry controller starts a fresh Sequence for every call of
// a wrapped operation, so schedules reset per call rather than per process.
package wait

import (
	"errors"
	"math"
	"time"
)

// DefaultInterval is the base interval used by schedules when none is given.
const DefaultInterval = time.Second

// maxDurationFloat backstops float64 -> time.Duration conversion overflow.
const maxDurationFloat = float64(math.MaxInt64) - 1

var (
	// ErrInvalidCap reports a cap that is zero or negative.
	ErrInvalidCap = errors.New("wait: cap must be positive")

	// ErrInvalidFactor reports a growth or decay factor outside its valid range.
	ErrInvalidFactor = errors.New("wait: invalid factor")

	// ErrInvalidInitial reports a non-positive initial value.
	ErrInvalidInitial = errors.New("wait: initial value must be positive")

	// ErrInvalidFloor reports a negative floor.
	ErrInvalidFloor = errors.New("wait: floor must not be negative")
)

// Sequence produces successive wait durations. Sequences are infinite and
// every produced value is >= 0. A Sequence is stateful and not safe for
// concurrent use; each call owns its own.
type Sequence func() time.Duration

// Schedule starts a fresh, independent Sequence. Two Sequences obtained from
// the same Schedule never share state.
type Schedule func() Sequence
