package rapidmath

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
)

const barWidth = 30

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	e := g.engine
	now := g.clock.Now()
	lvl := e.Level()

	left := fmt.Sprintf("Level %d  ✓ %d", lvl.Level, e.Correct())
	if e.Wrong() > 0 {
		left += fmt.Sprintf("  ✗ %d", e.Wrong())
	}
	board.DrawHUD(dst, "RAPID MATH", left, fmt.Sprintf("%ds", e.SessionSeconds(now)))

	mid := dst.Height() / 2

	secs := e.QuestionSeconds(now)
	total := int(core.CeilDiv(int64(lvl.QuestionMs), 1000))
	filled := 0
	if total > 0 {
		filled = core.Clamp(secs*barWidth/total, 0, barWidth)
	}
	barColor := core.ColorGreen
	if secs <= 2 {
		barColor = core.ColorRed
	}
	dst.DrawColorTextCentered(mid-4,
		strings.Repeat("█", filled)+strings.Repeat("░", barWidth-filled), barColor)

	if streak, _ := e.Streak(); streak >= 3 {
		dst.DrawColorTextCentered(mid-3, fmt.Sprintf("%d Streak!", streak), core.ColorOrange)
	}

	color := core.ColorWhite
	switch e.Phase() {
	case PhaseCorrect:
		color = core.ColorGreen
	case PhaseWrong, PhaseTimeout:
		color = core.ColorRed
	}
	dst.DrawColorTextCentered(mid-1, e.Question().String()+" = ?", color)

	entry := e.Entry()
	if entry == "" {
		entry = "_"
	}
	dst.DrawColorTextCentered(mid+1, entry, color)

	switch e.Phase() {
	case PhaseWrong:
		dst.DrawColorTextCentered(mid+3, fmt.Sprintf("Answer: %d", e.Question().Answer), core.ColorRed)
	case PhaseTimeout:
		dst.DrawColorTextCentered(mid+3, "Time's up!", core.ColorRed)
	}

	board.DrawFooter(dst, "0-9: Answer | -: Negate | Backspace: Clear | P: Pause | Q: Quit")
}
