// Package rapidmath implements Rapid Math: answer as many arithmetic
// questions as possible in sixty seconds.
package rapidmath

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

var tuning = config.Default().RapidMath

// Configure sets the tuning used by sessions started afterwards.
func Configure(c config.RapidMathConfig) {
	tuning = c
}

// Info is the catalogue entry for Rapid Math.
func Info() registry.Info {
	return registry.Info{
		ID:            "math",
		Slug:          "rapid-math",
		Title:         "Rapid Math",
		Description:   "Solve arithmetic problems against the clock.",
		EstimatedTime: "1 min",
		Icon:          "➕",
		Order:         5,
		Pausable:      true,
		Unit:          "correct",
		Format:        func(n int) string { return fmt.Sprintf("%d correct", n) },
		Rate: func(c core.Completion) registry.Rating {
			switch {
			case c.Primary >= 30 && c.Accuracy >= 90:
				return registry.RatingAmazing
			case c.Primary >= 20 && c.Accuracy >= 80:
				return registry.RatingGood
			case c.Primary >= 10:
				return registry.RatingAverage
			default:
				return registry.RatingTryAgain
			}
		},
	}
}

func init() {
	registry.Register(Info(), func() registry.Game {
		return New()
	})
}

// Game adapts the engine to the platform's tick/input model.
type Game struct {
	engine *Engine
	clock  core.Clock
}

// New creates a Rapid Math game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "math" }

// Title returns the display name.
func (g *Game) Title() string { return "Rapid Math" }

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.clock = core.Clock{}
	g.engine = NewEngine(tuning, rand.New(rand.NewSource(cfg.Seed)), cfg.Callbacks)
	g.engine.Start(g.clock.Now())
}

// Step brings the session up to now, then applies the frame. Pending
// timeouts fire before input, so a tap in the same refresh as a
// transition acts on the new state.
func (g *Game) Step(now int64, in core.InputFrame) core.StepResult {
	now = g.clock.Sync(now)
	g.engine.Update(now)
	for _, a := range in.Ordered() {
		g.Press(now, a)
	}
	return core.StepResult{State: g.State()}
}

// Press applies one action immediately. Digits must be applied in the
// order they were typed, so the host calls this per key event.
func (g *Game) Press(now int64, a core.Action) {
	now = g.clock.Sync(now)
	if d, ok := a.Digit(); ok {
		g.engine.Digit(now, d)
		return
	}
	switch a {
	case core.ActionNegate:
		g.engine.Negate()
	case core.ActionClear:
		g.engine.Clear()
	}
}

// SetPaused forwards the host pause flag.
func (g *Game) SetPaused(paused bool) {
	g.engine.SetPaused(g.clock.Now(), paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Correct(),
		Level:    g.engine.Level().Level,
		Phase:    g.engine.Phase().String(),
		GameOver: g.engine.Done(),
		Paused:   g.engine.Paused(),
	}
}
