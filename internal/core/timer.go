package core

// Timer is a single-slot pending timeout measured in milliseconds.
// Arming replaces whatever was pending, so a game can never have two
// scheduled transitions at once. A frozen timer keeps its remaining time
// and resumes from it on Thaw.
type Timer struct {
	kind      int
	due       int64
	remaining int64
	armed     bool
	frozen    bool
}

// Arm schedules kind to fire delayMs after now, cancelling any pending timeout.
func (t *Timer) Arm(now, delayMs int64, kind int) {
	t.kind = kind
	t.due = now + delayMs
	t.remaining = 0
	t.armed = true
	t.frozen = false
}

// Cancel drops the pending timeout, if any.
func (t *Timer) Cancel() {
	*t = Timer{}
}

// Pending reports the kind of the pending timeout.
func (t *Timer) Pending() (int, bool) {
	return t.kind, t.armed
}

// Fire returns the pending kind once its deadline has passed and clears the
// slot. Frozen timers never fire.
func (t *Timer) Fire(now int64) (int, bool) {
	if !t.armed || t.frozen || now < t.due {
		return 0, false
	}
	kind := t.kind
	t.Cancel()
	return kind, true
}

// Freeze stops the countdown at now. Calling it twice is harmless.
func (t *Timer) Freeze(now int64) {
	if !t.armed || t.frozen {
		return
	}
	t.remaining = Max64(t.due-now, 0)
	t.frozen = true
}

// Thaw restarts the countdown with whatever was left at Freeze time.
func (t *Timer) Thaw(now int64) {
	if !t.frozen {
		return
	}
	t.due = now + t.remaining
	t.remaining = 0
	t.frozen = false
}

// Remaining returns the milliseconds left before the timeout fires.
func (t *Timer) Remaining(now int64) int64 {
	switch {
	case !t.armed:
		return 0
	case t.frozen:
		return t.remaining
	default:
		return Max64(t.due-now, 0)
	}
}
