package visual

import (
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
)

// Phase is the engine state.
type Phase int

const (
	PhaseCountdown Phase = iota
	PhaseShowing
	PhasePlaying
	PhaseCorrect
	PhaseWrong
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseShowing:
		return "showing"
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

const (
	timerCountdown = iota + 1
	timerHide
	timerNextLevel
	timerRetry
	timerFinish
)

// Engine is the Visual Memory state machine.
type Engine struct {
	cfg config.VisualConfig
	rng *rand.Rand
	cb  core.Callbacks

	level     int
	maxLevel  int
	score     int
	lives     int
	streak    core.Streak
	pattern   map[int]bool
	order     []int
	found     map[int]bool
	wrong     map[int]bool
	countdown int
	phase     Phase
	paused    bool
	timer     core.Timer
	finished  bool
}

// NewEngine creates an engine. Call Start to begin the session.
func NewEngine(cfg config.VisualConfig, rng *rand.Rand, cb core.Callbacks) *Engine {
	if cfg.Lives <= 0 {
		cfg.Lives = 3
	}
	if cfg.CountdownSteps <= 0 {
		cfg.CountdownSteps = 3
	}
	return &Engine{cfg: cfg, rng: rng, cb: cb}
}

// Start begins a new session at level 1.
func (e *Engine) Start(now int64) {
	e.level = 1
	e.maxLevel = 1
	e.score = 0
	e.lives = e.cfg.Lives
	e.streak = core.Streak{}
	e.finished = false
	e.paused = false
	e.startLevel(now)
}

func (e *Engine) startLevel(now int64) {
	d := LevelFor(e.level)
	e.order = PickPattern(e.rng, d)
	e.pattern = make(map[int]bool, len(e.order))
	for _, i := range e.order {
		e.pattern[i] = true
	}
	e.found = map[int]bool{}
	e.wrong = map[int]bool{}
	e.countdown = e.cfg.CountdownSteps
	e.phase = PhaseCountdown
	e.timer.Arm(now, int64(e.cfg.CountdownStepMs), timerCountdown)
}

// Tap judges a tap on cell index.
func (e *Engine) Tap(now int64, index int) {
	if e.paused || e.phase != PhasePlaying || index < 0 || index >= LevelFor(e.level).Cells() {
		return
	}
	if e.found[index] {
		return
	}

	if !e.pattern[index] {
		e.wrong[index] = true
		e.streak.Miss()
		e.lives--
		e.phase = PhaseWrong
		if e.lives <= 0 {
			e.timer.Arm(now, int64(e.cfg.FailDelayMs), timerFinish)
		} else {
			e.timer.Arm(now, int64(e.cfg.FailDelayMs), timerRetry)
		}
		return
	}

	// the bonus looks at the streak carried into the final tap
	prior := e.streak.Current()
	e.found[index] = true
	e.streak.Hit()
	if len(e.found) < len(e.pattern) {
		return
	}

	gain := e.level * 10
	if prior >= e.cfg.StreakBonusAt {
		gain += e.cfg.StreakBonus
	}
	e.score += gain
	if e.level+1 > e.maxLevel {
		e.maxLevel = e.level + 1
	}
	e.phase = PhaseCorrect
	e.cb.ScoreUpdate(core.ScoreReport{
		Value: e.score,
		Level: e.maxLevel,
		Stats: map[string]int{"maxStreak": e.streak.Max()},
	})
	e.timer.Arm(now, int64(e.cfg.ClearDelayMs), timerNextLevel)
}

// Update fires the pending transition if it is due.
func (e *Engine) Update(now int64) {
	kind, ok := e.timer.Fire(now)
	if !ok {
		return
	}
	switch kind {
	case timerCountdown:
		if e.phase != PhaseCountdown {
			return
		}
		e.countdown--
		if e.countdown > 0 {
			e.timer.Arm(now, int64(e.cfg.CountdownStepMs), timerCountdown)
			return
		}
		e.phase = PhaseShowing
		e.timer.Arm(now, int64(LevelFor(e.level).PreviewMs), timerHide)
	case timerHide:
		if e.phase == PhaseShowing {
			e.phase = PhasePlaying
		}
	case timerNextLevel:
		if e.phase != PhaseCorrect {
			return
		}
		e.level++
		e.startLevel(now)
	case timerRetry:
		if e.phase == PhaseWrong {
			e.startLevel(now)
		}
	case timerFinish:
		if e.phase == PhaseWrong {
			e.finish()
		}
	}
}

func (e *Engine) finish() {
	if e.finished {
		return
	}
	e.finished = true
	e.phase = PhaseDone
	e.cb.Complete(core.Completion{
		Primary:   e.score,
		Secondary: e.maxLevel,
		Level:     e.maxLevel,
		Stats:     map[string]int{"maxStreak": e.streak.Max()},
	})
}

// SetPaused freezes or resumes the pending transition.
func (e *Engine) SetPaused(now int64, paused bool) {
	if e.paused == paused || e.finished {
		return
	}
	e.paused = paused
	if paused {
		e.timer.Freeze(now)
	} else {
		e.timer.Thaw(now)
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Level returns the level being played.
func (e *Engine) Level() int { return e.level }

// MaxLevel returns the highest level reached.
func (e *Engine) MaxLevel() int { return e.maxLevel }

// Score returns the accumulated points.
func (e *Engine) Score() int { return e.score }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Streak returns the current and longest streak.
func (e *Engine) Streak() (int, int) { return e.streak.Current(), e.streak.Max() }

// Countdown returns the countdown step shown before the pattern.
func (e *Engine) Countdown() int { return e.countdown }

// Pattern returns the cells to remember in index order.
func (e *Engine) Pattern() []int { return e.order }

// InPattern reports whether cell index belongs to the pattern.
func (e *Engine) InPattern(index int) bool { return e.pattern[index] }

// Found reports whether cell index has been tapped correctly.
func (e *Engine) Found(index int) bool { return e.found[index] }

// Progress returns how many pattern cells were found.
func (e *Engine) Progress() (found, total int) { return len(e.found), len(e.pattern) }

// Wrong reports whether cell index was a wrong tap on this pattern.
func (e *Engine) Wrong(index int) bool { return e.wrong[index] }

// Difficulty returns the layout of the current level.
func (e *Engine) Difficulty() Difficulty { return LevelFor(e.level) }

// Paused reports the host pause flag.
func (e *Engine) Paused() bool { return e.paused }

// Done reports whether the session has completed.
func (e *Engine) Done() bool { return e.finished }
