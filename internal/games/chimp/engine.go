package chimp

import (
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
)

// Phase is the engine state.
type Phase int

const (
	PhasePreview Phase = iota // numbers visible until the first tap
	PhasePlaying              // numbers hidden, taps judged
	PhaseLevelUp              // level cleared, next board pending
	PhaseFailed               // wrong tap, retry or game over pending
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhasePreview:
		return "preview"
	case PhasePlaying:
		return "playing"
	case PhaseLevelUp:
		return "levelUp"
	case PhaseFailed:
		return "failed"
	default:
		return "done"
	}
}

const (
	timerNextLevel = iota + 1
	timerRetry
	timerFinish
)

// Engine is the Chimp Test state machine. All methods take the current time
// in milliseconds; the engine never reads a clock.
type Engine struct {
	cfg config.ChimpConfig
	rng *rand.Rand
	cb  core.Callbacks

	level    int
	maxLevel int
	lives    int
	streak   core.Streak
	board    []int
	next     int
	phase    Phase
	wrongAt  int
	paused   bool
	preview  core.Stopwatch
	timer    core.Timer
	finished bool
}

// NewEngine creates an engine. Call Start to begin the session.
func NewEngine(cfg config.ChimpConfig, rng *rand.Rand, cb core.Callbacks) *Engine {
	if cfg.Lives <= 0 {
		cfg.Lives = 3
	}
	if cfg.MaxLevel <= 0 {
		cfg.MaxLevel = 15
	}
	return &Engine{cfg: cfg, rng: rng, cb: cb}
}

// Start begins a new session at level 1.
func (e *Engine) Start(now int64) {
	e.level = 1
	e.maxLevel = 1
	e.lives = e.cfg.Lives
	e.streak = core.Streak{}
	e.finished = false
	e.paused = false
	e.startLevel(now)
}

func (e *Engine) startLevel(now int64) {
	e.timer.Cancel()
	e.board = PlaceNumbers(e.rng, LevelFor(e.level))
	e.next = 1
	e.wrongAt = -1
	e.phase = PhasePreview
	e.preview.Start(now)
}

// Tap judges a tap on board cell index. Empty cells only end the preview.
func (e *Engine) Tap(now int64, index int) {
	if e.paused || index < 0 || index >= len(e.board) {
		return
	}
	if e.phase == PhasePreview {
		e.phase = PhasePlaying
	}
	if e.phase != PhasePlaying {
		return
	}

	value := e.board[index]
	if value == 0 || value < e.next {
		// empty or already cleared positions are not tappable
		return
	}

	if value != e.next {
		e.miss(now, index)
		return
	}

	e.streak.Hit()
	if value < LevelFor(e.level).Items {
		e.next++
		return
	}

	// level cleared
	e.next = value + 1
	if e.level+1 > e.maxLevel {
		e.maxLevel = e.level + 1
	}
	e.phase = PhaseLevelUp
	e.cb.ScoreUpdate(core.ScoreReport{
		Value: e.maxLevel,
		Level: e.maxLevel,
		Stats: map[string]int{"maxStreak": e.streak.Max()},
	})
	if e.level >= e.cfg.MaxLevel {
		e.timer.Arm(now, int64(e.cfg.LevelUpDelayMs), timerFinish)
	} else {
		e.timer.Arm(now, int64(e.cfg.LevelUpDelayMs), timerNextLevel)
	}
}

func (e *Engine) miss(now int64, index int) {
	e.streak.Miss()
	e.lives--
	e.wrongAt = index
	e.phase = PhaseFailed
	if e.lives <= 0 {
		e.timer.Arm(now, int64(e.cfg.FailDelayMs), timerFinish)
		return
	}
	e.timer.Arm(now, int64(e.cfg.FailDelayMs), timerRetry)
}

// Update fires the pending transition if it is due.
func (e *Engine) Update(now int64) {
	kind, ok := e.timer.Fire(now)
	if !ok {
		return
	}
	switch kind {
	case timerNextLevel:
		if e.phase != PhaseLevelUp {
			return
		}
		e.level++
		e.startLevel(now)
	case timerRetry:
		if e.phase != PhaseFailed {
			return
		}
		e.startLevel(now)
	case timerFinish:
		if e.phase != PhaseLevelUp && e.phase != PhaseFailed {
			return
		}
		e.finish()
	}
}

func (e *Engine) finish() {
	if e.finished {
		return
	}
	e.finished = true
	e.phase = PhaseDone
	level := e.maxLevel
	if e.lives > 0 {
		// cleared the final level
		level = e.level
	}
	e.cb.Complete(core.Completion{
		Primary:   level,
		Secondary: e.streak.Max(),
		Level:     level,
		Stats:     map[string]int{"maxStreak": e.streak.Max()},
	})
}

// SetPaused freezes or resumes the pending transition and the preview countdown.
func (e *Engine) SetPaused(now int64, paused bool) {
	if e.paused == paused || e.finished {
		return
	}
	e.paused = paused
	if paused {
		e.timer.Freeze(now)
		e.preview.Pause(now)
		return
	}
	e.timer.Thaw(now)
	e.preview.Resume(now)
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Level returns the level being played.
func (e *Engine) Level() int { return e.level }

// MaxLevel returns the highest level reached.
func (e *Engine) MaxLevel() int { return e.maxLevel }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Streak returns the current and longest streak.
func (e *Engine) Streak() (int, int) { return e.streak.Current(), e.streak.Max() }

// Next returns the number the player must tap next.
func (e *Engine) Next() int { return e.next }

// Board returns the cell contents (0 = empty). The slice must not be modified.
func (e *Engine) Board() []int { return e.board }

// Difficulty returns the layout of the current level.
func (e *Engine) Difficulty() Difficulty { return LevelFor(e.level) }

// Hidden reports whether numbers are masked.
func (e *Engine) Hidden() bool { return e.phase != PhasePreview }

// WrongCell returns the index of the last wrong tap on this board, or -1.
func (e *Engine) WrongCell() int { return e.wrongAt }

// PreviewCountdown returns the whole seconds left on the preview display.
func (e *Engine) PreviewCountdown(now int64) int {
	left := int64(LevelFor(e.level).PreviewMs) - e.preview.Elapsed(now)
	return int(core.CeilDiv(core.Max64(left, 0), 1000))
}

// Paused reports the host pause flag.
func (e *Engine) Paused() bool { return e.paused }

// Done reports whether the session has completed.
func (e *Engine) Done() bool { return e.finished }
