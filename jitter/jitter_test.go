package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFull_WithinHalfOpenRange(t *testing.T) {
	j := Full()
	base := time.Second
	for i := 0; i < 1000; i++ {
		got := j(base)
		require.GreaterOrEqual(t, got, time.Duration(0))
		require.Less(t, got, base)
	}
}

func TestFull_NonPositiveInput(t *testing.T) {
	j := Full()
	assert.Equal(t, time.Duration(0), j(0))
	assert.Equal(t, time.Duration(0), j(-time.Second))
}

func TestRandom_FloorsAtInput(t *testing.T) {
	j := Random(0.5)
	base := time.Second
	for i := 0; i < 1000; i++ {
		got := j(base)
		require.GreaterOrEqual(t, got, base, "random jitter keeps the unjittered wait as a floor")
		require.LessOrEqual(t, got, base+base/2)
	}
}

func TestRandom_NonPositiveFraction(t *testing.T) {
	j := Random(0)
	assert.Equal(t, time.Second, j(time.Second))
}

func TestRandom_NonPositiveInput(t *testing.T) {
	j := Random(0.5)
	assert.Equal(t, time.Duration(0), j(-time.Second))
}
