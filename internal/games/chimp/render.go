package chimp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	e := g.engine
	d := e.Difficulty()

	if !board.Fits(dst, d.Rows, d.Cols) {
		board.DrawTooSmall(dst)
		return
	}

	streak, _ := e.Streak()
	lives := strings.Repeat("♥", e.Lives()) + strings.Repeat("♡", core.Max(tuning.Lives-e.Lives(), 0))
	board.DrawHUD(dst, "CHIMP TEST",
		fmt.Sprintf("Level %d  %d numbers  %s", e.Level(), d.Items, lives),
		fmt.Sprintf("Streak %d", streak))

	cursor := g.cursor.Index()
	if e.Phase() != PhasePlaying && e.Phase() != PhasePreview {
		cursor = -1
	}
	board.DrawGrid(dst, d.Rows, d.Cols, g.tile, cursor)

	_, gridH := board.Size(d.Rows, d.Cols)
	_, oy := board.Origin(dst, d.Rows, d.Cols)
	status := oy + gridH + 1

	switch e.Phase() {
	case PhasePreview:
		dst.DrawColorTextCentered(status, fmt.Sprintf("Memorize! %d", e.PreviewCountdown(g.clock.Now())), core.ColorYellow)
	case PhasePlaying:
		dst.DrawTextCentered(status, fmt.Sprintf("Next: %d of %d", e.Next(), d.Items))
	case PhaseLevelUp:
		board.DrawOverlay(dst, core.ColorGreen,
			fmt.Sprintf("Level %d clear!", e.Level()),
			fmt.Sprintf("%d -> %d numbers", d.Items, LevelFor(e.Level()+1).Items))
	case PhaseFailed:
		if e.Lives() <= 0 {
			board.DrawOverlay(dst, core.ColorRed, "GAME OVER", fmt.Sprintf("Max level: %d", e.MaxLevel()))
		} else {
			board.DrawOverlay(dst, core.ColorRed, "Wrong!", fmt.Sprintf("%d lives left", e.Lives()))
		}
	}

	board.DrawFooter(dst, "Arrows/WASD: Move | Space: Tap | P: Pause | Q: Quit")
}

func (g *Game) tile(i int) board.Tile {
	e := g.engine
	value := e.Board()[i]
	switch {
	case i == e.WrongCell():
		return board.Tile{Label: "X", Color: core.ColorRed}
	case value == 0:
		return board.Tile{}
	case value < e.Next():
		return board.Tile{Label: "·", Color: core.ColorGray}
	case e.Hidden():
		return board.Tile{Label: "?", Color: core.ColorWhite, Fill: true}
	default:
		return board.Tile{Label: strconv.Itoa(value), Color: core.ColorYellow}
	}
}
