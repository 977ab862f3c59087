// SPDX-License-Identifier: MIT
package observer

import "sync"

// Log is an append-only event log shared by every Subscription of one
// generator. It never drops an event: subscribers that fall behind simply
// keep a growing backlog (§4.5 delivery guarantee c).
//
// Log is safe for concurrent use: the owning generator calls Emit from its
// single goroutine, while subscribers on other goroutines call Next/Drain
// independently (§5 resource ownership: observer buffers are co-owned
// between generator and subscriber).
type Log struct {
	mu     sync.RWMutex
	events []Event
}

// NewLog returns an empty Log.
func NewLog() *Log {
	return &Log{}
}

// Emit appends e to the log, in the exact order generator-internal logic
// calls Emit (§4.5 guarantee a). The caller must only call Emit after the
// corresponding state change is already visible via the generator's own
// accessors (§4.5 guarantee d).
func (l *Log) Emit(e Event) {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
}

// Len returns the number of events emitted so far.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// at returns a copy of the event at index i. Behavior is undefined if i is
// out of range.
func (l *Log) at(i int) Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.events[i]
}

// Subscribe returns a new Subscription with its own read cursor, starting
// at the current end of the log: a subscriber only ever sees events
// emitted after it subscribed.
func (l *Log) Subscribe() *Subscription {
	return &Subscription{log: l, cursor: l.Len()}
}

// Subscription is one subscriber's independent read cursor into a Log
// (§4.5 guarantee b: every subscriber sees every event emitted after it
// subscribes, regardless of how other subscribers drain).
type Subscription struct {
	log    *Log
	cursor int
}

// Next returns the oldest unread event and advances the cursor, or reports
// false if the subscriber is caught up.
func (s *Subscription) Next() (Event, bool) {
	if s.cursor >= s.log.Len() {
		return Event{}, false
	}
	e := s.log.at(s.cursor)
	s.cursor++
	return e, true
}

// Drain returns every unread event at once, advancing the cursor past all
// of them.
func (s *Subscription) Drain() []Event {
	n := s.log.Len()
	if s.cursor >= n {
		return nil
	}
	out := make([]Event, 0, n-s.cursor)
	for s.cursor < n {
		out = append(out, s.log.at(s.cursor))
		s.cursor++
	}
	return out
}

// Pending reports how many unread events are currently available.
func (s *Subscription) Pending() int {
	return s.log.Len() - s.cursor
}
