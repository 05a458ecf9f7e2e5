// Package stroop implements the Stroop Test: name the ink color of a color
// word, ignoring what the word says.
package stroop

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

var tuning = config.Default().Stroop

// Configure sets the tuning used by sessions started afterwards.
func Configure(c config.StroopConfig) {
	tuning = c
}

// Info is the catalogue entry for the Stroop Test.
func Info() registry.Info {
	return registry.Info{
		ID:            "stroop",
		Slug:          "stroop-test",
		Title:         "Stroop Test",
		Description:   "Pick the ink color, not the word. Trains cognitive control.",
		EstimatedTime: "45 sec",
		Icon:          "🎨",
		Order:         6,
		Pausable:      true,
		Unit:          "points",
		Format:        func(score int) string { return fmt.Sprintf("%d pts", score) },
		Rate: func(c core.Completion) registry.Rating {
			switch {
			case c.Primary >= 150 && c.Accuracy >= 90:
				return registry.RatingAmazing
			case c.Primary >= 100 && c.Accuracy >= 80:
				return registry.RatingGood
			case c.Primary >= 50:
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

// Game adapts the engine to the platform's tick/input model. The answer
// buttons form a single row the cursor moves along.
type Game struct {
	engine *Engine
	clock  core.Clock
	cursor board.Cursor
}

// New creates a Stroop Test game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "stroop" }

// Title returns the display name.
func (g *Game) Title() string { return "Stroop Test" }

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.clock = core.Clock{}
	g.engine = NewEngine(tuning, rand.New(rand.NewSource(cfg.Seed)), cfg.Callbacks)
	g.engine.Start(g.clock.Now())
	g.cursor.Resize(1, g.engine.Level().Colors)
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
	g.fit()
	return core.StepResult{State: g.State()}
}

// fit keeps the cursor on the current board.
func (g *Game) fit() {
	g.cursor.Resize(1, g.engine.Level().Colors)
}

// Press applies one action at now against the board on screen. Digits 1..n pick a color directly.
func (g *Game) Press(now int64, a core.Action) {
	now = g.clock.Sync(now)
	if g.engine.Paused() || g.cursor.Apply(a) {
		return
	}
	if d, ok := a.Digit(); ok && d > 0 {
		g.engine.Choose(now, d-1)
		return
	}
	if a == core.ActionSelect {
		g.engine.Choose(now, g.cursor.Index())
	}
}

// SetPaused forwards the host pause flag.
func (g *Game) SetPaused(paused bool) {
	g.engine.SetPaused(g.clock.Now(), paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level().Level,
		Phase:    g.engine.Phase().String(),
		GameOver: g.engine.Done(),
		Paused:   g.engine.Paused(),
	}
}
