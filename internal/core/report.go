package core

// ScoreReport is an incremental score notification. Games send one whenever
// a meaningful improvement happens (level cleared, new best sample, correct
// answer).
type ScoreReport struct {
	Value       int
	Level       int // 0 when not applicable
	Accuracy    int // percent, valid when HasAccuracy
	HasAccuracy bool
	Stats       map[string]int
}

// Completion is the final result of a session. Primary is the headline value
// the game is ranked by; Secondary depends on the game (max streak, best
// sample, accuracy or level).
type Completion struct {
	Primary     int
	Secondary   int
	Level       int
	Accuracy    int
	HasAccuracy bool
	Stats       map[string]int
}

// Callbacks is the score sink a host hands to a game.
// Either function may be nil.
type Callbacks struct {
	OnScoreUpdate func(ScoreReport)
	OnComplete    func(Completion)
}

// ScoreUpdate forwards r to OnScoreUpdate if set.
func (c Callbacks) ScoreUpdate(r ScoreReport) {
	if c.OnScoreUpdate != nil {
		c.OnScoreUpdate(r)
	}
}

// Complete forwards r to OnComplete if set.
func (c Callbacks) Complete(r Completion) {
	if c.OnComplete != nil {
		c.OnComplete(r)
	}
}

// Percent returns round(part/whole*100), or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (part*200 + whole) / (whole * 2)
}
