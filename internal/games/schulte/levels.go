package schulte

import (
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/core"
)

// Level is one rung of the ladder.
type Level struct {
	Size int // the grid is Size x Size
	Name string
}

// Levels is the fixed ladder, easiest first.
var Levels = []Level{
	{Size: 3, Name: "Warm Up"},
	{Size: 4, Name: "Easy"},
	{Size: 5, Name: "Medium"},
	{Size: 5, Name: "Medium+"},
	{Size: 6, Name: "Hard"},
	{Size: 6, Name: "Expert"},
	{Size: 7, Name: "Master"},
}

// LevelCount returns the number of levels.
func LevelCount() int {
	return len(Levels)
}

// LevelFor returns the level definition (1-based), clamped to the ladder.
func LevelFor(level int) Level {
	return Levels[core.Clamp(level, 1, len(Levels))-1]
}

// Cells returns the number of cells in the grid.
func (l Level) Cells() int { return l.Size * l.Size }

// NewGrid returns 1..Size² in shuffled row-major order.
func NewGrid(rng *rand.Rand, l Level) []int {
	return core.Shuffle(rng, l.Cells())
}
