// Package chimp implements the Chimp Test: memorize where the numbers are,
// then tap them in ascending order once they are hidden.
package chimp

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

// Package-level tuning, set once at startup
var tuning = config.Default().Chimp

// Configure sets the tuning used by sessions started afterwards.
func Configure(c config.ChimpConfig) {
	tuning = c
}

// Info is the catalogue entry for the Chimp Test.
func Info() registry.Info {
	return registry.Info{
		ID:            "chimp",
		Slug:          "chimp-test",
		Title:         "Chimp Test",
		Description:   "Remember the positions of the numbers, then tap them in order.",
		EstimatedTime: "3-5 min",
		Icon:          "🐵",
		Order:         2,
		Pausable:      true,
		Unit:          "level",
		Format:        func(score int) string { return fmt.Sprintf("Level %d", score) },
		Rate:          rate,
	}
}

func rate(c core.Completion) registry.Rating {
	switch {
	case c.Primary >= 10:
		return registry.RatingAmazing
	case c.Primary >= 7:
		return registry.RatingGood
	case c.Primary >= 5:
		return registry.RatingAverage
	default:
		return registry.RatingTryAgain
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

// New creates a Chimp Test game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "chimp" }

// Title returns the display name.
func (g *Game) Title() string { return "Chimp Test" }

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.clock = core.Clock{}
	g.engine = NewEngine(tuning, rand.New(rand.NewSource(cfg.Seed)), cfg.Callbacks)
	g.engine.Start(g.clock.Now())
	d := g.engine.Difficulty()
	g.cursor.Resize(d.Rows, d.Cols)
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
	d := g.engine.Difficulty()
	g.cursor.Resize(d.Rows, d.Cols)
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
		Score:    g.engine.MaxLevel(),
		Level:    g.engine.Level(),
		Lives:    g.engine.Lives(),
		Phase:    g.engine.Phase().String(),
		GameOver: g.engine.Done(),
		Paused:   g.engine.Paused(),
	}
}
