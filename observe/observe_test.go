package observe

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listObserver struct {
	BaseObserver
	name string
	log  *[]string
}

func (l listObserver) OnBackoff(context.Context, AttemptRecord) error {
	*l.log = append(*l.log, l.name)
	return nil
}

func TestMultiObserver_OrderAndNilTolerance(t *testing.T) {
	var got []string
	m := MultiObserver{Observers: []Observer{
		listObserver{name: "a", log: &got},
		nil,
		listObserver{name: "b", log: &got},
	}}

	require.NoError(t, m.OnBackoff(context.Background(), AttemptRecord{}))
	assert.Equal(t, []string{"a", "b"}, got)
}

type failingObserver struct {
	BaseObserver
	err error
}

func (f failingObserver) OnBackoff(context.Context, AttemptRecord) error { return f.err }

func TestMultiObserver_FirstErrorStopsFanOut(t *testing.T) {
	boom := errors.New("boom")
	var got []string
	m := MultiObserver{Observers: []Observer{
		failingObserver{err: boom},
		listObserver{name: "never", log: &got},
	}}

	err := m.OnBackoff(context.Background(), AttemptRecord{})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, got)
}

func TestCapture(t *testing.T) {
	c := &Capture{}
	ctx := context.Background()

	require.NoError(t, c.OnBackoff(ctx, AttemptRecord{Tries: 1}))
	require.NoError(t, c.OnBackoff(ctx, AttemptRecord{Tries: 2}))
	require.NoError(t, c.OnSuccess(ctx, AttemptRecord{Tries: 3}))

	assert.Equal(t, 2, c.Count(EventBackoff))
	assert.Equal(t, 1, c.Count(EventSuccess))
	assert.Equal(t, 0, c.Count(EventGiveUp))

	events := c.Events()
	require.Len(t, events, 3)
	assert.Equal(t, EventBackoff, events[0].Kind)
	assert.Equal(t, 1, events[0].Record.Tries)
	assert.Equal(t, EventSuccess, events[2].Kind)
}

func TestLogObserver_NilLoggerIsDisabled(t *testing.T) {
	var l LogObserver
	ctx := context.Background()
	require.NoError(t, l.OnBackoff(ctx, AttemptRecord{}))
	require.NoError(t, l.OnGiveUp(ctx, AttemptRecord{}))
	require.NoError(t, l.OnSuccess(ctx, AttemptRecord{}))
}

func TestLogObserver_Emits(t *testing.T) {
	var buf bytes.Buffer
	l := LogObserver{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
	ctx := context.Background()

	rec := AttemptRecord{
		Target:  "fetch",
		Tries:   2,
		Elapsed: 3 * time.Second,
		Wait:    time.Second,
		Err:     errors.New("boom"),
	}

	require.NoError(t, l.OnBackoff(ctx, rec))
	assert.Contains(t, buf.String(), "backing off")
	assert.Contains(t, buf.String(), "target=fetch")

	buf.Reset()
	require.NoError(t, l.OnGiveUp(ctx, rec))
	assert.Contains(t, buf.String(), "giving up")

	buf.Reset()
	require.NoError(t, l.OnSuccess(ctx, AttemptRecord{Target: "fetch", Tries: 1}))
	assert.Empty(t, buf.String(), "first-try success is not logged")

	require.NoError(t, l.OnSuccess(ctx, AttemptRecord{Target: "fetch", Tries: 3}))
	assert.Contains(t, buf.String(), "succeeded after retries")
}
