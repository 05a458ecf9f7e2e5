package reaction

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	e := g.engine

	best := "-"
	if e.Best() > 0 {
		best = fmt.Sprintf("%dms", e.Best())
	}
	board.DrawHUD(dst, "REACTION TIME",
		fmt.Sprintf("Round %d/%d", core.Min(e.Round(), e.Rounds()), e.Rounds()),
		fmt.Sprintf("Best %s", best))

	var color core.Color
	var lines []string
	switch e.Mode() {
	case ModeWaiting:
		color = core.ColorBlue
		lines = []string{"Press Space to start", "Tap when the panel turns green"}
	case ModeReady:
		color = core.ColorRed
		lines = []string{"Wait for green..."}
	case ModeNow:
		color = core.ColorBrightGreen
		lines = []string{"TAP NOW!"}
	case ModeTooEarly:
		color = core.ColorOrange
		lines = []string{"Too early!", "Wait for green"}
	case ModeClicked:
		color = core.ColorCyan
		if len(e.Samples()) >= e.Rounds() {
			lines = []string{"Complete!", fmt.Sprintf("Average %dms", e.Average())}
		} else {
			lines = []string{fmt.Sprintf("%dms!", e.Last()), Verdict(e.Last()), "Press Space for the next round"}
		}
	default:
		color = core.ColorGreen
		lines = []string{fmt.Sprintf("Average %dms", e.Average())}
	}
	drawPanel(dst, color)
	board.DrawOverlay(dst, color, lines...)

	if n := len(e.Samples()); n > 0 {
		parts := make([]string, n)
		for i, s := range e.Samples() {
			parts[i] = fmt.Sprintf("%d", s)
		}
		dst.DrawTextCentered(dst.Height()-3, "Times: "+strings.Join(parts, " · "))
	}

	board.DrawFooter(dst, "Space: Tap | Q: Quit")
}

// drawPanel fills the play area with the signal color.
func drawPanel(dst *core.Screen, color core.Color) {
	top, bottom := 3, dst.Height()-4
	for y := top; y < bottom; y++ {
		for x := 2; x < dst.Width()-2; x++ {
			dst.SetCell(x, y, core.Cell{Rune: '░', Color: color})
		}
	}
}
