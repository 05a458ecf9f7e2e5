package schulte

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	e := g.engine
	now := g.clock.Now()
	lvl := LevelFor(e.Level())

	if !board.Fits(dst, lvl.Size, lvl.Size) {
		board.DrawTooSmall(dst)
		return
	}

	streak, _ := e.Streak()
	left := fmt.Sprintf("Level %d/%d %s  Find: %d", e.Level(), LevelCount(), lvl.Name, e.Next())
	if e.Phase() != PhasePlaying {
		left = fmt.Sprintf("Level %d/%d %s", e.Level(), LevelCount(), lvl.Name)
	}
	board.DrawHUD(dst, "SCHULTE TABLE", left,
		fmt.Sprintf("%s  Total %s", FormatMs(int(e.Elapsed(now))), FormatMs(int(e.TotalMs()))))

	wrong := e.WrongCell(now)
	cursor := g.cursor.Index()
	if e.Phase() != PhasePlaying {
		cursor = -1
	}
	board.DrawGrid(dst, lvl.Size, lvl.Size, func(i int) board.Tile {
		v := e.Grid()[i]
		switch {
		case i == wrong:
			return board.Tile{Label: strconv.Itoa(v), Color: core.ColorRed}
		case v < e.Next():
			return board.Tile{Label: strconv.Itoa(v), Color: core.ColorGray}
		default:
			return board.Tile{Label: strconv.Itoa(v), Color: core.ColorWhite}
		}
	}, cursor)

	if streak >= 3 && e.Phase() == PhasePlaying {
		_, gridH := board.Size(lvl.Size, lvl.Size)
		_, oy := board.Origin(dst, lvl.Size, lvl.Size)
		dst.DrawColorTextCentered(oy+gridH+1, fmt.Sprintf("Streak %d!", streak), core.ColorOrange)
	}

	if e.Phase() == PhaseLevelUp {
		next := LevelFor(e.Level() + 1)
		board.DrawOverlay(dst, core.ColorGreen,
			fmt.Sprintf("Level %d done in %s", e.Level(), FormatMs(int(e.Elapsed(now)))),
			fmt.Sprintf("Next: %s (%dx%d)", next.Name, next.Size, next.Size))
	}

	board.DrawFooter(dst, "Arrows/WASD: Move | Space: Tap | P: Pause | Q: Quit")
}
