package stroop

import (
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/core"
)

// Swatch is a color choice: the word shown and the ink it is drawn with.
type Swatch struct {
	Name  string
	Color core.Color
}

// Palette lists every color in the order they unlock.
var Palette = []Swatch{
	{"RED", core.ColorRed},
	{"BLUE", core.ColorBlue},
	{"GREEN", core.ColorGreen},
	{"YELLOW", core.ColorYellow},
	{"PURPLE", core.ColorPurple},
}

// Level is the difficulty derived from the number of correct answers.
type Level struct {
	Level      int
	Colors     int
	SessionMs  int
	Multiplier int
}

// LevelFor derives the difficulty after correct answers.
func LevelFor(correct int) Level {
	level := correct/5 + 1
	return Level{
		Level:      level,
		Colors:     core.Min(4+level/2, len(Palette)),
		SessionMs:  core.Max(45-level*3, 20) * 1000,
		Multiplier: level,
	}
}

// Round is one word/ink pair, as indexes into Palette.
type Round struct {
	Word      int
	Ink       int
	Congruent bool
}

// NewRound draws a round from the first colors of the palette. With
// congruentPercent chance the ink matches the word; otherwise it differs.
func NewRound(rng *rand.Rand, colors, congruentPercent int) Round {
	colors = core.Clamp(colors, 2, len(Palette))
	word := rng.Intn(colors)
	if rng.Intn(100) < congruentPercent {
		return Round{Word: word, Ink: word, Congruent: true}
	}
	ink := rng.Intn(colors - 1)
	if ink >= word {
		ink++
	}
	return Round{Word: word, Ink: ink}
}

// Points scores a correct answer. streak is the streak including this answer.
func Points(multiplier int, responseMs int64, congruent bool, streak int) int {
	points := 10 * multiplier
	if responseMs < 1000 {
		points += 5
	}
	if responseMs < 500 {
		points += 5
	}
	if congruent {
		points = points * 7 / 10
	}
	if streak >= 5 {
		points += 10
	}
	return points
}
