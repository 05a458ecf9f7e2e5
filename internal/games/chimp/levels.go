package chimp

import (
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/core"
)

// Difficulty is the board layout for one level.
type Difficulty struct {
	Items     int // numbers to memorize
	PreviewMs int // nominal preview length shown as a countdown
	Cols      int
	Rows      int
}

// Cells returns the number of board positions.
func (d Difficulty) Cells() int { return d.Cols * d.Rows }

// LevelFor returns the difficulty of a level (1-based).
func LevelFor(level int) Difficulty {
	d := Difficulty{
		Items:     core.Min(level+3, 12),
		PreviewMs: core.Max(2000-level*100, 500),
	}
	switch {
	case level <= 4:
		d.Cols, d.Rows = 5, 4
	case level <= 8:
		d.Cols, d.Rows = 6, 5
	default:
		d.Cols, d.Rows = 7, 6
	}
	return d
}

// PlaceNumbers lays out 1..Items on distinct random cells. The result has one
// entry per cell; 0 marks an empty cell.
func PlaceNumbers(rng *rand.Rand, d Difficulty) []int {
	board := make([]int, d.Cells())
	for n, idx := range core.PickDistinct(rng, d.Cells(), d.Items) {
		board[idx] = n + 1
	}
	return board
}
