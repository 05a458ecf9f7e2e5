// Package board holds the cursor and grid drawing shared by the tile-based
// games (Chimp Test, Schulte Table, Visual Memory).
package board

import (
	"unicode/utf8"

	"github.com/vovakirdan/musclebrain/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3
)

// Tile is what a single grid cell shows.
type Tile struct {
	Label string
	Color core.Color
	Fill  bool // draw the cell background with block characters
}

// Cursor is the selection used in place of a pointer. It lives on a
// rows x cols board and never leaves it.
type Cursor struct {
	pos        core.GridCell
	rows, cols int
}

// Resize fits the cursor to a new board, clamping its position.
func (c *Cursor) Resize(rows, cols int) {
	c.rows, c.cols = rows, cols
	c.pos = c.pos.Move(0, 0, rows, cols)
}

// Center places the cursor in the middle of the board.
func (c *Cursor) Center() {
	c.pos = core.GridCell{Row: c.rows / 2, Col: c.cols / 2}
}

// Apply moves the cursor for a direction action and reports whether it
// consumed the action.
func (c *Cursor) Apply(a core.Action) bool {
	switch a {
	case core.ActionUp:
		c.pos = c.pos.Move(-1, 0, c.rows, c.cols)
	case core.ActionDown:
		c.pos = c.pos.Move(1, 0, c.rows, c.cols)
	case core.ActionLeft:
		c.pos = c.pos.Move(0, -1, c.rows, c.cols)
	case core.ActionRight:
		c.pos = c.pos.Move(0, 1, c.rows, c.cols)
	default:
		return false
	}
	return true
}

// Index returns the row-major index under the cursor.
func (c *Cursor) Index() int {
	return c.pos.Index(c.cols)
}

// Size returns the screen footprint of a rows x cols grid.
func Size(rows, cols int) (w, h int) {
	return cols*cellWidth + 1, rows*cellHeight + 1
}

// Fits reports whether the grid plus HUD fits on the screen.
func Fits(dst *core.Screen, rows, cols int) bool {
	w, h := Size(rows, cols)
	return dst.Width() >= w && dst.Height() >= h+hudHeight+2
}

// Origin returns the top-left corner of a centered grid below the HUD.
func Origin(dst *core.Screen, rows, cols int) (x, y int) {
	w, _ := Size(rows, cols)
	return (dst.Width() - w) / 2, hudHeight + 1
}

// DrawGrid draws a rows x cols grid. tile returns the content of each
// row-major index; cursor < 0 hides the cursor.
func DrawGrid(dst *core.Screen, rows, cols int, tile func(i int) Tile, cursor int) {
	ox, oy := Origin(dst, rows, cols)

	for y := range rows + 1 {
		for x := range cols + 1 {
			px := ox + x*cellWidth
			py := oy + y*cellHeight
			dst.SetCell(px, py, core.Cell{Rune: junction(x, y, cols, rows), Color: core.ColorGray})
			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Color: core.ColorGray})
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Color: core.ColorGray})
				}
			}
		}
	}

	for i := 0; i < rows*cols; i++ {
		cell := core.CellAt(i, cols)
		cx := ox + cell.Col*cellWidth + 1
		cy := oy + cell.Row*cellHeight + 1
		t := tile(i)

		inner := cellWidth - 1
		if t.Fill {
			for k := 0; k < inner; k++ {
				dst.SetCell(cx+k, cy, core.Cell{Rune: '█', Color: t.Color})
			}
		}
		if t.Label != "" {
			pad := core.Max((inner-utf8.RuneCountInString(t.Label))/2, 0)
			dst.DrawColorText(cx+pad, cy, t.Label, t.Color)
		}
		if i == cursor {
			dst.SetCell(cx, cy, core.Cell{Rune: '[', Color: core.ColorCyan})
			dst.SetCell(cx+inner-1, cy, core.Cell{Rune: ']', Color: core.ColorCyan})
		}
	}
}

func junction(x, y, cols, rows int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == cols:
		return '┐'
	case y == rows && x == 0:
		return '└'
	case y == rows && x == cols:
		return '┘'
	case y == 0:
		return '┬'
	case y == rows:
		return '┴'
	case x == 0:
		return '├'
	case x == cols:
		return '┤'
	default:
		return '┼'
	}
}

// DrawHUD writes a title line and a status line above the grid.
func DrawHUD(dst *core.Screen, title, left, right string) {
	dst.DrawColorTextCentered(0, title, core.ColorCyan)
	dst.DrawText(2, 1, left)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(right)-2, 1, right)
}

// DrawOverlay draws a centered box with the given lines.
func DrawOverlay(dst *core.Screen, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), color)
	for i, line := range lines {
		x := (dst.Width() - utf8.RuneCountInString(line)) / 2
		dst.DrawColorText(x, boxY+1+i, line, color)
	}
}

// DrawTooSmall shows a resize hint.
func DrawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// DrawFooter writes control hints on the last row.
func DrawFooter(dst *core.Screen, hint string) {
	dst.DrawColorTextCentered(dst.Height()-1, hint, core.ColorGray)
}
