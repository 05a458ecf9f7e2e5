package stroop

import (
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
)

// Phase is the engine state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseCorrect
	PhaseWrong
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseCorrect:
		return "correct"
	case PhaseWrong:
		return "wrong"
	default:
		return "done"
	}
}

const timerNextRound = 1

// Engine is the Stroop Test state machine. The session budget depends on
// the current level, so it is checked against the session stopwatch on
// every update rather than scheduled.
type Engine struct {
	cfg config.StroopConfig
	rng *rand.Rand
	cb  core.Callbacks

	round    Round
	score    int
	correct  int
	wrong    int
	lastGain int
	streak   core.Streak
	phase    Phase
	paused   bool
	session  core.Stopwatch
	response core.Stopwatch
	timer    core.Timer
	finished bool
}

// NewEngine creates an engine. Call Start to begin the session.
func NewEngine(cfg config.StroopConfig, rng *rand.Rand, cb core.Callbacks) *Engine {
	return &Engine{cfg: cfg, rng: rng, cb: cb}
}

// Start begins a new session.
func (e *Engine) Start(now int64) {
	e.score = 0
	e.correct = 0
	e.wrong = 0
	e.lastGain = 0
	e.streak = core.Streak{}
	e.paused = false
	e.finished = false
	e.session.Start(now)
	e.next(now)
}

func (e *Engine) next(now int64) {
	e.timer.Cancel()
	e.round = NewRound(e.rng, LevelFor(e.correct).Colors, e.cfg.CongruentPercent)
	e.phase = PhasePlaying
	e.response.Start(now)
}

// Choose judges the ink color picked by palette index.
func (e *Engine) Choose(now int64, color int) {
	if e.paused || e.phase != PhasePlaying || color < 0 || color >= LevelFor(e.correct).Colors {
		return
	}

	if color == e.round.Ink {
		lvl := LevelFor(e.correct)
		streak := e.streak.Hit()
		e.lastGain = Points(lvl.Multiplier, e.response.Elapsed(now), e.round.Congruent, streak)
		e.score += e.lastGain
		e.correct++
		e.phase = PhaseCorrect
		e.cb.ScoreUpdate(core.ScoreReport{
			Value:       e.score,
			Level:       LevelFor(e.correct).Level,
			Accuracy:    e.Accuracy(),
			HasAccuracy: true,
		})
	} else {
		e.streak.Miss()
		e.wrong++
		e.lastGain = -core.Min(e.cfg.WrongPenalty, e.score)
		e.score += e.lastGain
		e.phase = PhaseWrong
	}
	e.timer.Arm(now, int64(e.cfg.NextRoundDelayMs), timerNextRound)
}

// Update ends the session once the level's budget is spent, then fires the
// pending transition if it is due.
func (e *Engine) Update(now int64) {
	if e.finished || e.paused {
		return
	}
	if e.session.Elapsed(now) >= int64(LevelFor(e.correct).SessionMs) {
		e.finish()
		return
	}
	if kind, ok := e.timer.Fire(now); ok && kind == timerNextRound && e.phase != PhasePlaying {
		e.next(now)
	}
}

func (e *Engine) finish() {
	e.finished = true
	e.phase = PhaseDone
	e.timer.Cancel()
	accuracy := e.Accuracy()
	e.cb.Complete(core.Completion{
		Primary:     e.score,
		Secondary:   accuracy,
		Level:       LevelFor(e.correct).Level,
		Accuracy:    accuracy,
		HasAccuracy: true,
		Stats: map[string]int{
			"correct":   e.correct,
			"wrong":     e.wrong,
			"maxStreak": e.streak.Max(),
		},
	})
}

// SetPaused freezes or resumes the session, the response baseline and the
// pending transition.
func (e *Engine) SetPaused(now int64, paused bool) {
	if e.paused == paused || e.finished {
		return
	}
	e.paused = paused
	if paused {
		e.session.Pause(now)
		e.response.Pause(now)
		e.timer.Freeze(now)
		return
	}
	e.session.Resume(now)
	e.response.Resume(now)
	e.timer.Thaw(now)
}

// Accuracy returns correct answers over all answers, in percent.
func (e *Engine) Accuracy() int {
	return core.Percent(e.correct, e.correct+e.wrong)
}

// Round returns the current word/ink pair.
func (e *Engine) Round() Round { return e.round }

// Score returns the accumulated points.
func (e *Engine) Score() int { return e.score }

// LastGain returns the points won or lost by the last answer.
func (e *Engine) LastGain() int { return e.lastGain }

// Correct returns the number of correct answers.
func (e *Engine) Correct() int { return e.correct }

// Wrong returns the number of wrong answers.
func (e *Engine) Wrong() int { return e.wrong }

// Level returns the current difficulty.
func (e *Engine) Level() Level { return LevelFor(e.correct) }

// Streak returns the current and longest streak.
func (e *Engine) Streak() (int, int) { return e.streak.Current(), e.streak.Max() }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// SecondsLeft returns the whole seconds left in the session.
func (e *Engine) SecondsLeft(now int64) int {
	left := core.Max64(int64(LevelFor(e.correct).SessionMs)-e.session.Elapsed(now), 0)
	return int(core.CeilDiv(left, 1000))
}

// Paused reports the host pause flag.
func (e *Engine) Paused() bool { return e.paused }

// Done reports whether the session has completed.
func (e *Engine) Done() bool { return e.finished }
