package observe

import (
	"context"
	"sync"
)

// EventKind labels a captured retry event.
type EventKind string

const (
	EventBackoff EventKind = "backoff"
	EventGiveUp  EventKind = "giveup"
	EventSuccess EventKind = "success"
)

// Event is one captured lifecycle event.
type Event struct {
	Kind   EventKind
	Record AttemptRecord
}

// Capture records events in arrival order. It is safe for concurrent use and
// intended for tests and debugging.
type Capture struct {
	mu     sync.Mutex
	events []Event
}

func (c *Capture) OnBackoff(_ context.Context, rec AttemptRecord) error {
	c.append(EventBackoff, rec)
	return nil
}

func (c *Capture) OnGiveUp(_ context.Context, rec AttemptRecord) error {
	c.append(EventGiveUp, rec)
	return nil
}

func (c *Capture) OnSuccess(_ context.Context, rec AttemptRecord) error {
	c.append(EventSuccess, rec)
	return nil
}

func (c *Capture) append(kind EventKind, rec AttemptRecord) {
	c.mu.Lock()
	c.events = append(c.events, Event{Kind: kind, Record: rec})
	c.mu.Unlock()
}

// Events returns a copy of the captured events.
func (c *Capture) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Count returns how many events of kind were captured.
func (c *Capture) Count(kind EventKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
