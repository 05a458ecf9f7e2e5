package schulte

import (
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
)

// Phase is the engine state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelUp
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelUp:
		return "levelUp"
	default:
		return "done"
	}
}

const timerNextLevel = 1

// Engine is the Schulte Table state machine. Level time is measured with a
// pause-neutral stopwatch; the total is the sum of finished levels.
type Engine struct {
	cfg config.SchulteConfig
	rng *rand.Rand
	cb  core.Callbacks

	level     int
	grid      []int
	next      int
	streak    core.Streak
	totalMs   int64
	lastLevel int64
	watch     core.Stopwatch
	timer     core.Timer
	phase     Phase
	paused    bool
	wrongAt   int
	wrongTime int64
}

// NewEngine creates an engine. Call Start to begin the session.
func NewEngine(cfg config.SchulteConfig, rng *rand.Rand, cb core.Callbacks) *Engine {
	return &Engine{cfg: cfg, rng: rng, cb: cb, wrongAt: -1}
}

// Start begins a new session at level 1.
func (e *Engine) Start(now int64) {
	e.level = 1
	e.totalMs = 0
	e.lastLevel = 0
	e.streak = core.Streak{}
	e.paused = false
	e.startLevel(now)
}

func (e *Engine) startLevel(now int64) {
	e.timer.Cancel()
	e.grid = NewGrid(e.rng, LevelFor(e.level))
	e.next = 1
	e.wrongAt = -1
	e.phase = PhasePlaying
	e.watch.Start(now)
	if e.paused {
		e.watch.Pause(now)
	}
}

// Tap judges a tap on grid cell index.
func (e *Engine) Tap(now int64, index int) {
	if e.paused || e.phase != PhasePlaying || index < 0 || index >= len(e.grid) {
		return
	}
	value := e.grid[index]
	if value < e.next {
		// already found
		return
	}
	if value != e.next {
		e.streak.Miss()
		e.wrongAt = index
		e.wrongTime = now
		return
	}

	e.streak.Hit()
	e.wrongAt = -1
	if value < len(e.grid) {
		e.next++
		return
	}

	e.next = value + 1
	e.lastLevel = e.watch.Elapsed(now)
	e.totalMs += e.lastLevel
	e.cb.ScoreUpdate(core.ScoreReport{Value: int(e.totalMs), Level: e.level})

	if e.level >= LevelCount() {
		e.phase = PhaseDone
		e.cb.Complete(core.Completion{
			Primary:   int(e.totalMs),
			Secondary: e.level,
			Level:     e.level,
			Stats:     map[string]int{"maxStreak": e.streak.Max()},
		})
		return
	}
	e.phase = PhaseLevelUp
	e.timer.Arm(now, int64(e.cfg.LevelUpDelayMs), timerNextLevel)
}

// Update fires the pending level transition if it is due.
func (e *Engine) Update(now int64) {
	kind, ok := e.timer.Fire(now)
	if !ok || kind != timerNextLevel || e.phase != PhaseLevelUp {
		return
	}
	e.level++
	e.startLevel(now)
}

// SetPaused stops or resumes the level clock and any pending transition.
func (e *Engine) SetPaused(now int64, paused bool) {
	if e.paused == paused || e.phase == PhaseDone {
		return
	}
	e.paused = paused
	if paused {
		e.watch.Pause(now)
		e.timer.Freeze(now)
		return
	}
	e.watch.Resume(now)
	e.timer.Thaw(now)
}

// Elapsed returns the active time of the level in progress.
func (e *Engine) Elapsed(now int64) int64 {
	if e.phase != PhasePlaying {
		return e.lastLevel
	}
	return e.watch.Elapsed(now)
}

// TotalMs returns the summed time of finished levels.
func (e *Engine) TotalMs() int64 { return e.totalMs }

// WrongCell returns the cell to flash as an error at now, or -1.
func (e *Engine) WrongCell(now int64) int {
	if e.wrongAt < 0 || now-e.wrongTime >= int64(e.cfg.ErrorFlashMs) {
		return -1
	}
	return e.wrongAt
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Level returns the current level (1-based).
func (e *Engine) Level() int { return e.level }

// Next returns the number to find next.
func (e *Engine) Next() int { return e.next }

// Grid returns the shuffled numbers. The slice must not be modified.
func (e *Engine) Grid() []int { return e.grid }

// Streak returns the current and longest streak.
func (e *Engine) Streak() (int, int) { return e.streak.Current(), e.streak.Max() }

// Paused reports the host pause flag.
func (e *Engine) Paused() bool { return e.paused }

// Done reports whether all levels are finished.
func (e *Engine) Done() bool { return e.phase == PhaseDone }
