// Package core provides fundamental types and utilities shared by the game
// engines. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

// Rect is an axis-aligned box on the screen, used for layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// GridCell is a row/column position in a rectangular board.
type GridCell struct {
	Row, Col int
}

// CellAt converts a row-major index into a grid position.
func CellAt(index, cols int) GridCell {
	if cols <= 0 {
		return GridCell{}
	}
	return GridCell{Row: index / cols, Col: index % cols}
}

// Index converts a grid position back to a row-major index.
func (c GridCell) Index(cols int) int {
	return c.Row*cols + c.Col
}

// Move shifts the cell by (dr, dc), clamped to a rows x cols board.
func (c GridCell) Move(dr, dc, rows, cols int) GridCell {
	return GridCell{
		Row: Clamp(c.Row+dr, 0, Max(rows-1, 0)),
		Col: Clamp(c.Col+dc, 0, Max(cols-1, 0)),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Max64 returns the larger of two int64 values.
func Max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// CeilDiv returns ceil(a/b) for non-negative a and positive b.
func CeilDiv(a, b int64) int64 {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
