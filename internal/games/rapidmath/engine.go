package rapidmath

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
)

// Phase is the engine state.
type Phase int

const (
	PhasePlaying Phase = iota // question open for input
	PhaseCorrect
	PhaseWrong
	PhaseTimeout
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
	case PhaseTimeout:
		return "timeout"
	default:
		return "done"
	}
}

const (
	timerQuestion = iota + 1
	timerNext
)

// Engine is the Rapid Math state machine. The session budget is measured
// with a stopwatch; the timer slot holds the question countdown or the
// feedback delay.
type Engine struct {
	cfg config.RapidMathConfig
	rng *rand.Rand
	cb  core.Callbacks

	question Question
	entry    string
	correct  int
	wrong    int
	total    int
	streak   core.Streak
	phase    Phase
	paused   bool
	session  core.Stopwatch
	timer    core.Timer
	finished bool
}

// NewEngine creates an engine. Call Start to begin the session.
func NewEngine(cfg config.RapidMathConfig, rng *rand.Rand, cb core.Callbacks) *Engine {
	if cfg.SessionMs <= 0 {
		cfg.SessionMs = 60000
	}
	return &Engine{cfg: cfg, rng: rng, cb: cb}
}

// Start begins a new session.
func (e *Engine) Start(now int64) {
	e.correct = 0
	e.wrong = 0
	e.total = 0
	e.streak = core.Streak{}
	e.paused = false
	e.finished = false
	e.session.Start(now)
	e.next(now)
}

func (e *Engine) next(now int64) {
	lvl := LevelFor(e.correct)
	e.question = Generate(e.rng, lvl)
	e.entry = ""
	e.total++
	e.phase = PhasePlaying
	e.timer.Arm(now, int64(lvl.QuestionMs), timerQuestion)
}

// Digit appends d to the answer and judges it.
func (e *Engine) Digit(now int64, d int) {
	if !e.accepting() || d < 0 || d > 9 {
		return
	}
	e.entry += strconv.Itoa(d)
	value, err := strconv.Atoi(e.entry)
	if err != nil {
		return
	}

	target := e.question.Answer
	switch {
	case value == target:
		e.correct++
		e.streak.Hit()
		e.phase = PhaseCorrect
		e.cb.ScoreUpdate(core.ScoreReport{
			Value:       e.correct,
			Level:       LevelFor(e.correct).Level,
			Accuracy:    e.Accuracy(),
			HasAccuracy: true,
		})
		e.timer.Arm(now, int64(e.cfg.CorrectDelayMs), timerNext)
	case len(e.entry) >= len(strconv.Itoa(target)) || value > target:
		e.miss(now, PhaseWrong, e.cfg.WrongDelayMs)
	}
}

// Negate toggles the sign of the answer being typed.
func (e *Engine) Negate() {
	if !e.accepting() {
		return
	}
	if rest, ok := strings.CutPrefix(e.entry, "-"); ok {
		e.entry = rest
	} else {
		e.entry = "-" + e.entry
	}
}

// Clear erases the answer being typed.
func (e *Engine) Clear() {
	if e.accepting() {
		e.entry = ""
	}
}

func (e *Engine) accepting() bool {
	return !e.paused && e.phase == PhasePlaying
}

func (e *Engine) miss(now int64, phase Phase, delayMs int) {
	e.wrong++
	e.streak.Miss()
	e.phase = phase
	e.timer.Arm(now, int64(delayMs), timerNext)
}

// Update ends the session once its budget is spent, then fires the pending
// transition if it is due.
func (e *Engine) Update(now int64) {
	if e.finished || e.paused {
		return
	}
	if e.session.Elapsed(now) >= int64(e.cfg.SessionMs) {
		e.finish()
		return
	}
	kind, ok := e.timer.Fire(now)
	if !ok {
		return
	}
	switch {
	case kind == timerQuestion && e.phase == PhasePlaying:
		e.miss(now, PhaseTimeout, e.cfg.TimeoutDelayMs)
	case kind == timerNext && e.phase != PhasePlaying:
		e.next(now)
	}
}

func (e *Engine) finish() {
	e.finished = true
	e.phase = PhaseDone
	e.timer.Cancel()
	accuracy := e.Accuracy()
	e.cb.Complete(core.Completion{
		Primary:     e.correct,
		Secondary:   accuracy,
		Level:       LevelFor(e.correct).Level,
		Accuracy:    accuracy,
		HasAccuracy: true,
		Stats: map[string]int{
			"wrong":     e.wrong,
			"questions": e.total,
			"maxStreak": e.streak.Max(),
		},
	})
}

// SetPaused freezes or resumes both the session and the question timers.
func (e *Engine) SetPaused(now int64, paused bool) {
	if e.paused == paused || e.finished {
		return
	}
	e.paused = paused
	if paused {
		e.session.Pause(now)
		e.timer.Freeze(now)
		return
	}
	e.session.Resume(now)
	e.timer.Thaw(now)
}

// Accuracy returns the share of questions answered correctly, in percent.
func (e *Engine) Accuracy() int {
	return core.Percent(e.correct, e.total)
}

// Question returns the current question.
func (e *Engine) Question() Question { return e.question }

// Entry returns the answer typed so far.
func (e *Engine) Entry() string { return e.entry }

// Correct returns the number of correct answers.
func (e *Engine) Correct() int { return e.correct }

// Wrong returns the number of wrong answers and timeouts.
func (e *Engine) Wrong() int { return e.wrong }

// Total returns the number of questions shown.
func (e *Engine) Total() int { return e.total }

// Level returns the current difficulty.
func (e *Engine) Level() Level { return LevelFor(e.correct) }

// Streak returns the current and longest streak.
func (e *Engine) Streak() (int, int) { return e.streak.Current(), e.streak.Max() }

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// QuestionSeconds returns the whole seconds left on the question.
func (e *Engine) QuestionSeconds(now int64) int {
	if e.phase != PhasePlaying {
		return 0
	}
	return int(core.CeilDiv(e.timer.Remaining(now), 1000))
}

// SessionSeconds returns the whole seconds left in the session.
func (e *Engine) SessionSeconds(now int64) int {
	left := core.Max64(int64(e.cfg.SessionMs)-e.session.Elapsed(now), 0)
	return int(core.CeilDiv(left, 1000))
}

// Paused reports the host pause flag.
func (e *Engine) Paused() bool { return e.paused }

// Done reports whether the session has completed.
func (e *Engine) Done() bool { return e.finished }
