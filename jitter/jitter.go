// Package jitter provides randomizing transforms for wait durations.
//
// Jitter spreads out the retries of many synchronized callers so they do not
// hit a recovering resource in lockstep.
package jitter

import (
	"math/rand"
	"time"
)

// Jitter transforms a computed wait into the wait actually used. It must be
// pure apart from randomness and must never return a negative duration.
type Jitter func(time.Duration) time.Duration

// Full returns a jitterer producing a uniformly random wait in [0, d).
func Full() Jitter {
	return func(d time.Duration) time.Duration {
		if d <= 0 {
			return 0
		}
		return time.Duration(rand.Float64() * float64(d))
	}
}

// Random returns a jitterer producing d + uniform(0, fraction*d): the
// unjittered wait acts as a floor with randomness layered above it. A
// non-positive fraction disables the randomness.
func Random(fraction float64) Jitter {
	return func(d time.Duration) time.Duration {
		if d <= 0 {
			return 0
		}
		if fraction <= 0 {
			return d
		}
		return d + time.Duration(rand.Float64()*fraction*float64(d))
	}
}
