package core

import "time"

// Clock is a game's view of session time in milliseconds. The host feeds
// it from the wall clock; it never runs backwards.
type Clock struct {
	now int64
}

// Sync moves the clock to now and returns the resulting time. Earlier
// instants are ignored.
func (c *Clock) Sync(now int64) int64 {
	if now > c.now {
		c.now = now
	}
	return c.now
}

// Now returns the last synced time in milliseconds.
func (c *Clock) Now() int64 {
	return c.now
}

// SessionClock converts wall-clock instants into session milliseconds,
// leaving out the spans during which the session was frozen.
type SessionClock struct {
	start    time.Time
	frozenAt time.Time
	frozen   bool
	idle     time.Duration
}

// NewSessionClock starts a session at start.
func NewSessionClock(start time.Time) SessionClock {
	return SessionClock{start: start}
}

// Now returns the session time at t.
func (c *SessionClock) Now(t time.Time) int64 {
	if c.frozen {
		t = c.frozenAt
	}
	d := t.Sub(c.start) - c.idle
	if d < 0 {
		return 0
	}
	return d.Milliseconds()
}

// Freeze stops session time at t. Freezing twice keeps the first instant.
func (c *SessionClock) Freeze(t time.Time) {
	if c.frozen {
		return
	}
	c.frozen = true
	c.frozenAt = t
}

// Thaw resumes session time at t.
func (c *SessionClock) Thaw(t time.Time) {
	if !c.frozen {
		return
	}
	c.frozen = false
	if gap := t.Sub(c.frozenAt); gap > 0 {
		c.idle += gap
	}
}

// Frozen reports whether session time is stopped.
func (c *SessionClock) Frozen() bool {
	return c.frozen
}
