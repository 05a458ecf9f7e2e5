// Package visual implements Visual Memory: a pattern of tiles lights up,
// then the player reproduces it from memory.
package visual

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

var tuning = config.Default().Visual

// Configure sets the tuning used by sessions started afterwards.
func Configure(c config.VisualConfig) {
	tuning = c
}

// Info is the catalogue entry for Visual Memory.
func Info() registry.Info {
	return registry.Info{
		ID:            "visual",
		Slug:          "visual-memory",
		Title:         "Visual Memory",
		Description:   "Memorize the highlighted tiles and tap them back.",
		EstimatedTime: "2-4 min",
		Icon:          "🧠",
		Order:         4,
		Pausable:      true,
		Unit:          "points",
		Format:        func(score int) string { return fmt.Sprintf("%d pts", score) },
		Rate: func(c core.Completion) registry.Rating {
			switch {
			case c.Secondary >= 12:
				return registry.RatingAmazing
			case c.Secondary >= 8:
				return registry.RatingGood
			case c.Secondary >= 4:
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
	cursor board.Cursor
}

// New creates a Visual Memory game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "visual" }

// Title returns the display name.
func (g *Game) Title() string { return "Visual Memory" }

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.clock = core.Clock{}
	g.engine = NewEngine(tuning, rand.New(rand.NewSource(cfg.Seed)), cfg.Callbacks)
	g.engine.Start(g.clock.Now())
	size := g.engine.Difficulty().GridSize
	g.cursor.Resize(size, size)
	g.cursor.Center()
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
	size := g.engine.Difficulty().GridSize
	g.cursor.Resize(size, size)
}

// Press applies one action at now against the board on screen.
func (g *Game) Press(now int64, a core.Action) {
	now = g.clock.Sync(now)
	if g.engine.Paused() || g.cursor.Apply(a) {
		return
	}
	if a == core.ActionSelect {
		g.engine.Tap(now, g.cursor.Index())
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
		Level:    g.engine.Level(),
		Lives:    g.engine.Lives(),
		Phase:    g.engine.Phase().String(),
		GameOver: g.engine.Done(),
		Paused:   g.engine.Paused(),
	}
}
