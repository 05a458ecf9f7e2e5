// Package reaction implements Reaction Time: wait for the signal, then tap
// as fast as possible. Five samples make a session.
package reaction

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

var tuning = config.Default().Reaction

// Configure sets the tuning used by sessions started afterwards.
func Configure(c config.ReactionConfig) {
	tuning = c
}

// Info is the catalogue entry for Reaction Time.
func Info() registry.Info {
	return registry.Info{
		ID:            "reaction",
		Slug:          "reaction-time",
		Title:         "Reaction Time",
		Description:   "Tap the moment the screen turns green.",
		EstimatedTime: "1 min",
		Icon:          "⚡",
		Order:         3,
		LowerIsBetter: true,
		Unit:          "ms",
		Format:        func(ms int) string { return fmt.Sprintf("%dms", ms) },
		Rate: func(c core.Completion) registry.Rating {
			switch {
			case c.Primary < 220:
				return registry.RatingAmazing
			case c.Primary < 280:
				return registry.RatingGood
			case c.Primary < 350:
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

// New creates a Reaction Time game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "reaction" }

// Title returns the display name.
func (g *Game) Title() string { return "Reaction Time" }

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

// Press applies one action at now against what is on screen. The signal
// only appears on Step, so a tap that beats the next refresh is too early.
func (g *Game) Press(now int64, a core.Action) {
	now = g.clock.Sync(now)
	if a == core.ActionSelect {
		g.engine.Tap(now)
	}
}

// SetPaused is a no-op: a paused reaction test would measure nothing.
func (g *Game) SetPaused(bool) {}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Best(),
		Level:    core.Min(g.engine.Round(), g.engine.Rounds()),
		Phase:    g.engine.Mode().String(),
		GameOver: g.engine.Done(),
	}
}
