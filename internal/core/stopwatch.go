package core

// Stopwatch measures active time in milliseconds. Time spent paused is
// excluded; every pause/resume cycle is accounted exactly once.
type Stopwatch struct {
	start    int64
	pausedAt int64
	excluded int64
	running  bool
	paused   bool
}

// Start (re)starts the stopwatch at now with zero elapsed time.
func (s *Stopwatch) Start(now int64) {
	*s = Stopwatch{start: now, running: true}
}

// Pause stops accumulating time. No-op if already paused or not running.
func (s *Stopwatch) Pause(now int64) {
	if !s.running || s.paused {
		return
	}
	s.pausedAt = now
	s.paused = true
}

// Resume continues accumulating time. No-op unless paused.
func (s *Stopwatch) Resume(now int64) {
	if !s.paused {
		return
	}
	s.excluded += now - s.pausedAt
	s.paused = false
}

// Paused reports whether the stopwatch is currently paused.
func (s *Stopwatch) Paused() bool {
	return s.paused
}

// Running reports whether Start has been called.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns active milliseconds since Start.
func (s *Stopwatch) Elapsed(now int64) int64 {
	if !s.running {
		return 0
	}
	end := now
	if s.paused {
		end = s.pausedAt
	}
	return Max64(end-s.start-s.excluded, 0)
}
