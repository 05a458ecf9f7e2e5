// Package scores is the host side of the score contract: it follows a
// running session, judges the completion against the player's best and
// persists results without blocking the UI.
package scores

import (
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

// Result is what the completion screen shows.
type Result struct {
	Completion core.Completion
	Rating     registry.Rating
	NewRecord  bool
	Best       int // best headline value after this session
	HadBest    bool
}

// Tracker follows one session. It is not safe for concurrent use; the host
// drives it from its update loop.
type Tracker struct {
	info    registry.Info
	best    int
	hasBest bool
	live    core.ScoreReport
	result  *Result
}

// NewTracker starts tracking a session of the given game.
func NewTracker(info registry.Info) *Tracker {
	return &Tracker{info: info}
}

// WithBest seeds the tracker with the player's stored best.
func (t *Tracker) WithBest(best int) *Tracker {
	t.best = best
	t.hasBest = true
	return t
}

// Callbacks returns score callbacks that feed the tracker and then forward
// to next.
func (t *Tracker) Callbacks(next core.Callbacks) core.Callbacks {
	return core.Callbacks{
		OnScoreUpdate: func(r core.ScoreReport) {
			t.Observe(r)
			next.ScoreUpdate(r)
		},
		OnComplete: func(c core.Completion) {
			t.Finish(c)
			next.Complete(c)
		},
	}
}

// Observe records an incremental report.
func (t *Tracker) Observe(r core.ScoreReport) {
	t.live = r
}

// Live returns the latest incremental report.
func (t *Tracker) Live() core.ScoreReport {
	return t.live
}

// Finish judges a completion. Only the first call counts.
func (t *Tracker) Finish(c core.Completion) Result {
	if t.result != nil {
		return *t.result
	}

	res := Result{
		Completion: c,
		Rating:     t.info.RateCompletion(c),
		Best:       c.Primary,
		HadBest:    t.hasBest,
	}
	switch {
	case !t.hasBest:
		res.NewRecord = true
	case t.info.Better(c.Primary, t.best):
		res.NewRecord = true
	default:
		res.Best = t.best
	}

	t.result = &res
	return res
}

// Result returns the judged completion, if the session has finished.
func (t *Tracker) Result() (Result, bool) {
	if t.result == nil {
		return Result{}, false
	}
	return *t.result, true
}

// Info returns the tracked game's catalogue entry.
func (t *Tracker) Info() registry.Info {
	return t.info
}
