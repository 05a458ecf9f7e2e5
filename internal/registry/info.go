package registry

import (
	"fmt"

	"github.com/vovakirdan/musclebrain/internal/core"
)

// Rating is the verdict shown on the completion screen.
type Rating string

const (
	RatingAmazing  Rating = "amazing"
	RatingGood     Rating = "good"
	RatingAverage  Rating = "average"
	RatingTryAgain Rating = "tryAgain"
)

// Label returns the display text for a rating.
func (r Rating) Label() string {
	switch r {
	case RatingAmazing:
		return "Amazing!"
	case RatingGood:
		return "Great job!"
	case RatingAverage:
		return "Not bad"
	default:
		return "Keep practicing"
	}
}

// Info is the catalogue entry of a game.
type Info struct {
	ID            string
	Slug          string // stable key used for storage and the HTTP API
	Title         string
	Description   string
	EstimatedTime string
	Icon          string
	Order         int

	// LowerIsBetter flips best-score comparison (times, reaction averages).
	LowerIsBetter bool

	// Pausable reports whether SetPaused has any effect.
	Pausable bool

	// Unit names the headline value for the leaderboard column.
	Unit string

	// Format renders a headline value for display. Nil means plain integer.
	Format func(score int) string

	// Rate maps a completion to a rating. Nil means RatingAverage.
	Rate func(c core.Completion) Rating
}

// FormatScore renders score using the game's formatter.
func (i Info) FormatScore(score int) string {
	if i.Format == nil {
		return fmt.Sprintf("%d", score)
	}
	return i.Format(score)
}

// RateCompletion applies the game's rating function.
func (i Info) RateCompletion(c core.Completion) Rating {
	if i.Rate == nil {
		return RatingAverage
	}
	return i.Rate(c)
}

// Better reports whether candidate beats current under the game's ordering.
func (i Info) Better(candidate, current int) bool {
	if i.LowerIsBetter {
		return candidate < current
	}
	return candidate > current
}
