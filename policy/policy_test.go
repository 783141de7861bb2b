package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aponysus/reprise/wait"
)

func TestNormalize_Defaults(t *testing.T) {
	p, err := Policy{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, ScheduleExponential, p.Schedule.Kind)
	assert.Equal(t, JitterFull, p.Jitter)
}

func TestNormalize_RandomJitterFraction(t *testing.T) {
	p, err := Policy{Jitter: JitterRandom}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.JitterFraction)

	p, err = Policy{Jitter: JitterRandom, JitterFraction: 0.25}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 0.25, p.JitterFraction)
}

func TestNormalize_NegativeBoundsClamp(t *testing.T) {
	p, err := Policy{MaxTries: -3, MaxTime: Duration(-time.Second)}.Normalize()
	require.NoError(t, err)
	assert.Zero(t, p.MaxTries)
	assert.Zero(t, p.MaxTime)
}

func TestNormalize_InvalidEnums(t *testing.T) {
	var normErr *NormalizeError

	_, err := Policy{Schedule: ScheduleSpec{Kind: "polynomial"}}.Normalize()
	require.ErrorAs(t, err, &normErr)
	assert.Equal(t, "schedule.kind", normErr.Field)

	_, err = Policy{Jitter: "lots"}.Normalize()
	require.ErrorAs(t, err, &normErr)
	assert.Equal(t, "jitter", normErr.Field)
}

func TestBuildSchedule_Kinds(t *testing.T) {
	cases := []struct {
		name  string
		spec  ScheduleSpec
		first time.Duration
	}{
		{
			name:  "constant",
			spec:  ScheduleSpec{Kind: ScheduleConstant, Interval: Duration(3 * time.Second)},
			first: 3 * time.Second,
		},
		{
			name:  "exponential",
			spec:  ScheduleSpec{Kind: ScheduleExponential, Base: Duration(time.Second), Factor: 3},
			first: time.Second,
		},
		{
			name:  "fibonacci",
			spec:  ScheduleSpec{Kind: ScheduleFibonacci, Unit: Duration(time.Second)},
			first: time.Second,
		},
		{
			name:  "decay",
			spec:  ScheduleSpec{Kind: ScheduleDecay, Initial: Duration(8 * time.Second)},
			first: 8 * time.Second,
		},
		{
			name:  "empty_kind_is_exponential",
			spec:  ScheduleSpec{Base: Duration(2 * time.Second)},
			first: 2 * time.Second,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.spec.BuildSchedule()
			require.NoError(t, err)
			assert.Equal(t, tc.first, s()())
		})
	}
}

func TestBuildSchedule_InvalidCap(t *testing.T) {
	_, err := ScheduleSpec{Kind: ScheduleExponential, Cap: Duration(-time.Second)}.BuildSchedule()
	assert.ErrorIs(t, err, wait.ErrInvalidCap)

	_, err = ScheduleSpec{Kind: ScheduleFibonacci, Cap: Duration(-time.Second)}.BuildSchedule()
	assert.ErrorIs(t, err, wait.ErrInvalidCap)
}

func TestBuildJitter(t *testing.T) {
	p, err := Policy{Jitter: JitterNone}.Normalize()
	require.NoError(t, err)
	assert.Nil(t, p.BuildJitter())

	p, err = Policy{Jitter: JitterFull}.Normalize()
	require.NoError(t, err)
	j := p.BuildJitter()
	require.NotNil(t, j)
	got := j(time.Second)
	assert.GreaterOrEqual(t, got, time.Duration(0))
	assert.Less(t, got, time.Second)

	p, err = Policy{Jitter: JitterRandom}.Normalize()
	require.NoError(t, err)
	j = p.BuildJitter()
	require.NotNil(t, j)
	assert.GreaterOrEqual(t, j(time.Second), time.Second)
}

func TestDuration_Unmarshal(t *testing.T) {
	doc := `
schedule:
  kind: constant
  interval: 250ms
max_time: 30
`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, p.Schedule.Interval.Std())
	assert.Equal(t, 30*time.Second, p.MaxTime.Std(), "bare numbers read as seconds")
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	_, err := Load(strings.NewReader("max_time: soon"))
	require.Error(t, err)
}

func TestLoad_FullDocument(t *testing.T) {
	doc := `
schedule:
  kind: exponential
  base: 100ms
  factor: 2
  cap: 10s
max_tries: 8
max_time: 2m
jitter: random
jitter_fraction: 0.3
classifier: timeout
`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, ScheduleExponential, p.Schedule.Kind)
	assert.Equal(t, 100*time.Millisecond, p.Schedule.Base.Std())
	assert.Equal(t, 10*time.Second, p.Schedule.Cap.Std())
	assert.Equal(t, 8, p.MaxTries)
	assert.Equal(t, 2*time.Minute, p.MaxTime.Std())
	assert.Equal(t, JitterRandom, p.Jitter)
	assert.Equal(t, 0.3, p.JitterFraction)
	assert.Equal(t, "timeout", p.Classifier)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := Load(strings.NewReader("repeat_forever: true"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retry.yaml")
	doc := "schedule:\n  kind: fibonacci\n  unit: 1s\nmax_tries: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ScheduleFibonacci, p.Schedule.Kind)
	assert.Equal(t, 4, p.MaxTries)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
