// Package games links every mini-game into the registry and applies the
// loaded tuning to each of them.
package games

import (
	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/games/chimp"
	"github.com/vovakirdan/musclebrain/internal/games/rapidmath"
	"github.com/vovakirdan/musclebrain/internal/games/reaction"
	"github.com/vovakirdan/musclebrain/internal/games/schulte"
	"github.com/vovakirdan/musclebrain/internal/games/stroop"
	"github.com/vovakirdan/musclebrain/internal/games/visual"
)

// Configure applies cfg to every game. Sessions already running keep the
// tuning they started with.
func Configure(cfg config.Config) {
	chimp.Configure(cfg.Chimp)
	schulte.Configure(cfg.Schulte)
	reaction.Configure(cfg.Reaction)
	visual.Configure(cfg.Visual)
	rapidmath.Configure(cfg.RapidMath)
	stroop.Configure(cfg.Stroop)
}
