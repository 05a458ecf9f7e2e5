package visual

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/musclebrain/internal/core"
)

// Difficulty describes one level.
type Difficulty struct {
	GridSize  int
	Tiles     int
	PreviewMs int
}

// Cells returns the number of cells on the grid.
func (d Difficulty) Cells() int {
	return d.GridSize * d.GridSize
}

// LevelFor derives the layout of a level.
func LevelFor(level int) Difficulty {
	size := 3
	switch {
	case level > 10:
		size = 5
	case level > 5:
		size = 4
	}
	return Difficulty{
		GridSize:  size,
		Tiles:     core.Min(level/2+2, size*size-1),
		PreviewMs: core.Max(2000-level*80, 800),
	}
}

// PickPattern chooses the cells to remember, sorted by index.
func PickPattern(rng *rand.Rand, d Difficulty) []int {
	pattern := core.PickDistinct(rng, d.Cells(), d.Tiles)
	sort.Ints(pattern)
	return pattern
}
