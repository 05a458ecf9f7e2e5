package reaction

import (
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/core"
)

// Window bounds the random wait before the signal.
type Window struct {
	MinMs int
	MaxMs int
}

// RoundFor returns the wait window of a round (1-based). Later rounds wait
// less, so anticipation pays off less.
func RoundFor(round int) Window {
	return Window{
		MinMs: core.Max(1500-round*100, 800),
		MaxMs: core.Max(4000-round*200, 2000),
	}
}

// Delay draws a wait uniformly from [MinMs, MaxMs).
func Delay(rng *rand.Rand, w Window) int {
	return core.IntRange(rng, w.MinMs, w.MaxMs)
}

// Verdict is the feedback for a single reaction sample.
func Verdict(ms int) string {
	switch {
	case ms < 200:
		return "INSANE!"
	case ms < 250:
		return "Amazing!"
	case ms < 300:
		return "Great!"
	case ms < 400:
		return "Good"
	default:
		return "Keep trying"
	}
}
