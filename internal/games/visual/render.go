package visual

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	e := g.engine
	d := e.Difficulty()

	if !board.Fits(dst, d.GridSize, d.GridSize) {
		board.DrawTooSmall(dst)
		return
	}

	lives := strings.Repeat("♥", e.Lives()) + strings.Repeat("♡", core.Max(tuning.Lives-e.Lives(), 0))
	board.DrawHUD(dst, "VISUAL MEMORY",
		fmt.Sprintf("Level %d  %d tiles  %s", e.Level(), d.Tiles, lives),
		fmt.Sprintf("%d pts", e.Score()))

	if e.Phase() == PhaseCountdown {
		board.DrawOverlay(dst, core.ColorCyan, "Get ready", fmt.Sprintf("%d", e.Countdown()))
		board.DrawFooter(dst, "P: Pause | Q: Quit")
		return
	}

	cursor := -1
	if e.Phase() == PhasePlaying {
		cursor = g.cursor.Index()
	}
	board.DrawGrid(dst, d.GridSize, d.GridSize, g.tile, cursor)

	_, gridH := board.Size(d.GridSize, d.GridSize)
	_, oy := board.Origin(dst, d.GridSize, d.GridSize)
	status := oy + gridH + 1
	found, total := e.Progress()
	streak, _ := e.Streak()

	switch e.Phase() {
	case PhaseShowing:
		dst.DrawColorTextCentered(status, "Memorize!", core.ColorYellow)
	case PhasePlaying:
		dst.DrawTextCentered(status, fmt.Sprintf("Found %d of %d", found, total))
		if streak >= tuning.StreakBonusAt {
			dst.DrawColorTextCentered(status+1, fmt.Sprintf("%d Streak Bonus!", streak), core.ColorOrange)
		}
	case PhaseCorrect:
		dst.DrawColorTextCentered(status, "Perfect!", core.ColorGreen)
	case PhaseWrong:
		msg := fmt.Sprintf("Wrong! %d lives left", e.Lives())
		if e.Lives() <= 0 {
			msg = "Game over"
		}
		dst.DrawColorTextCentered(status, msg, core.ColorRed)
	}

	board.DrawFooter(dst, "Arrows/WASD: Move | Space: Tap | P: Pause | Q: Quit")
}

func (g *Game) tile(i int) board.Tile {
	e := g.engine
	lit := board.Tile{Color: core.ColorBrightGreen, Fill: true}
	switch e.Phase() {
	case PhaseShowing:
		if e.InPattern(i) {
			return board.Tile{Color: core.ColorWhite, Fill: true}
		}
	case PhaseCorrect:
		if e.InPattern(i) {
			return lit
		}
	case PhaseWrong:
		if e.Wrong(i) {
			return board.Tile{Label: "X", Color: core.ColorRed}
		}
		if e.InPattern(i) {
			return board.Tile{Color: core.ColorGreen, Fill: true}
		}
	}
	if e.Found(i) {
		return lit
	}
	return board.Tile{}
}
