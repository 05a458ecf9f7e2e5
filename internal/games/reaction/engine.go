package reaction

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
)

// Mode is the engine state.
type Mode int

const (
	ModeWaiting  Mode = iota // idle, a tap arms the next trial
	ModeReady                // signal pending, tapping now is a false start
	ModeNow                  // signal shown, measuring
	ModeClicked              // sample recorded
	ModeTooEarly             // false start cooldown
	ModeDone
)

func (m Mode) String() string {
	switch m {
	case ModeWaiting:
		return "waiting"
	case ModeReady:
		return "ready"
	case ModeNow:
		return "now"
	case ModeClicked:
		return "clicked"
	case ModeTooEarly:
		return "tooEarly"
	default:
		return "done"
	}
}

const (
	timerSignal = iota + 1
	timerCooldown
	timerFinish
)

// Engine is the Reaction Time state machine. It has no pause capability.
type Engine struct {
	cfg config.ReactionConfig
	rng *rand.Rand
	cb  core.Callbacks

	mode     Mode
	samples  []int
	best     int
	tooEarly int
	signalAt int64
	timer    core.Timer
	finished bool
}

// NewEngine creates an engine. Call Start to begin the session.
func NewEngine(cfg config.ReactionConfig, rng *rand.Rand, cb core.Callbacks) *Engine {
	if cfg.Rounds <= 0 {
		cfg.Rounds = 5
	}
	return &Engine{cfg: cfg, rng: rng, cb: cb}
}

// Start resets the session and waits for the first tap.
func (e *Engine) Start(int64) {
	e.timer.Cancel()
	e.mode = ModeWaiting
	e.samples = nil
	e.best = math.MaxInt
	e.tooEarly = 0
	e.finished = false
}

// Round returns the 1-based round in progress.
func (e *Engine) Round() int {
	return len(e.samples) + 1
}

func (e *Engine) arm(now int64) {
	e.mode = ModeReady
	e.timer.Arm(now, int64(Delay(e.rng, RoundFor(e.Round()))), timerSignal)
}

// Tap handles a tap anywhere.
func (e *Engine) Tap(now int64) {
	switch e.mode {
	case ModeWaiting:
		e.arm(now)
	case ModeReady:
		e.tooEarly++
		e.mode = ModeTooEarly
		e.timer.Arm(now, int64(e.cfg.TooEarlyCooldownMs), timerCooldown)
	case ModeNow:
		e.record(now)
	case ModeClicked:
		if len(e.samples) < e.cfg.Rounds {
			e.arm(now)
		}
	}
}

func (e *Engine) record(now int64) {
	reaction := int(now - e.signalAt)
	e.samples = append(e.samples, reaction)
	e.mode = ModeClicked
	if reaction < e.best {
		e.best = reaction
		e.cb.ScoreUpdate(core.ScoreReport{Value: reaction})
	}
	if len(e.samples) >= e.cfg.Rounds {
		e.timer.Arm(now, int64(e.cfg.FinishDelayMs), timerFinish)
	}
}

// Update fires the pending transition if it is due.
func (e *Engine) Update(now int64) {
	kind, ok := e.timer.Fire(now)
	if !ok {
		return
	}
	switch {
	case kind == timerSignal && e.mode == ModeReady:
		e.mode = ModeNow
		e.signalAt = now
	case kind == timerCooldown && e.mode == ModeTooEarly:
		e.mode = ModeWaiting
	case kind == timerFinish && e.mode == ModeClicked:
		e.finish()
	}
}

func (e *Engine) finish() {
	if e.finished {
		return
	}
	e.finished = true
	e.mode = ModeDone
	avg := e.Average()
	e.cb.Complete(core.Completion{
		Primary:   avg,
		Secondary: e.best,
		Stats:     map[string]int{"bestTime": e.best, "tooEarly": e.tooEarly},
	})
}

// Average returns the rounded mean of the recorded samples, or 0.
func (e *Engine) Average() int {
	if len(e.samples) == 0 {
		return 0
	}
	sum := 0
	for _, s := range e.samples {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(e.samples))))
}

// Mode returns the current state.
func (e *Engine) Mode() Mode { return e.mode }

// Samples returns the recorded reaction times. The slice must not be modified.
func (e *Engine) Samples() []int { return e.samples }

// Last returns the most recent sample, or 0.
func (e *Engine) Last() int {
	if len(e.samples) == 0 {
		return 0
	}
	return e.samples[len(e.samples)-1]
}

// Best returns the fastest sample, or 0 before the first one.
func (e *Engine) Best() int {
	if len(e.samples) == 0 {
		return 0
	}
	return e.best
}

// TooEarly returns the number of false starts.
func (e *Engine) TooEarly() int { return e.tooEarly }

// Rounds returns the number of samples in a session.
func (e *Engine) Rounds() int { return e.cfg.Rounds }

// Done reports whether the session has completed.
func (e *Engine) Done() bool { return e.finished }
