package core

// Streak counts consecutive correct actions and remembers the longest run.
type Streak struct {
	current int
	max     int
}

// Hit extends the streak and returns its new length.
func (s *Streak) Hit() int {
	s.current++
	if s.current > s.max {
		s.max = s.current
	}
	return s.current
}

// Miss breaks the streak. The maximum is kept.
func (s *Streak) Miss() {
	s.current = 0
}

// Current returns the length of the ongoing streak.
func (s *Streak) Current() int { return s.current }

// Max returns the longest streak seen.
func (s *Streak) Max() int { return s.max }
