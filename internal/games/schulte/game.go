// Package schulte implements the Schulte Table: find the numbers 1..N² in a
// shuffled grid as fast as possible, over a ladder of growing grids.
package schulte

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

var tuning = config.Default().Schulte

// Configure sets the tuning used by sessions started afterwards.
func Configure(c config.SchulteConfig) {
	tuning = c
}

// FormatMs renders milliseconds as seconds with two decimals.
func FormatMs(ms int) string {
	return fmt.Sprintf("%d.%02ds", ms/1000, (ms%1000)/10)
}

// Info is the catalogue entry for the Schulte Table.
func Info() registry.Info {
	return registry.Info{
		ID:            "schulte",
		Slug:          "schulte-table",
		Title:         "Schulte Table",
		Description:   "Find the numbers in order, fast. Trains peripheral vision and focus.",
		EstimatedTime: "2-3 min",
		Icon:          "🔢",
		Order:         1,
		LowerIsBetter: true,
		Pausable:      true,
		Unit:          "time",
		Format:        FormatMs,
		Rate: func(c core.Completion) registry.Rating {
			switch {
			case c.Level >= 6:
				return registry.RatingAmazing
			case c.Level >= 4:
				return registry.RatingGood
			case c.Level >= 2:
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

// New creates a Schulte Table game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "schulte" }

// Title returns the display name.
func (g *Game) Title() string { return "Schulte Table" }

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.clock = core.Clock{}
	g.engine = NewEngine(tuning, rand.New(rand.NewSource(cfg.Seed)), cfg.Callbacks)
	g.engine.Start(g.clock.Now())
	size := LevelFor(1).Size
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
	size := LevelFor(g.engine.Level()).Size
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
		Score:    int(g.engine.TotalMs()),
		Level:    g.engine.Level(),
		Phase:    g.engine.Phase().String(),
		GameOver: g.engine.Done(),
		Paused:   g.engine.Paused(),
	}
}
