package stroop

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games/board"
)

const buttonWidth = 10

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	e := g.engine
	lvl := e.Level()

	board.DrawHUD(dst, "STROOP TEST",
		fmt.Sprintf("Level %d  %d pts", lvl.Level, e.Score()),
		fmt.Sprintf("%ds", e.SecondsLeft(g.clock.Now())))

	mid := dst.Height() / 2
	dst.DrawColorTextCentered(2, fmt.Sprintf("✓ %d  ✗ %d  %d%%", e.Correct(), e.Wrong(), e.Accuracy()), core.ColorGray)
	if streak, _ := e.Streak(); streak >= 3 {
		dst.DrawColorTextCentered(mid-4, fmt.Sprintf("%d Streak! +bonus", streak), core.ColorOrange)
	}

	dst.DrawColorTextCentered(mid-3, "What color is the ink?", core.ColorGray)
	r := e.Round()
	dst.DrawColorTextCentered(mid-1, Palette[r.Word].Name, Palette[r.Ink].Color)

	switch e.Phase() {
	case PhaseCorrect:
		dst.DrawColorTextCentered(mid+1, fmt.Sprintf("Correct! +%d", e.LastGain()), core.ColorGreen)
	case PhaseWrong:
		dst.DrawColorTextCentered(mid+1, fmt.Sprintf("Wrong! It was %s", Palette[r.Ink].Name), core.ColorRed)
	}

	g.drawButtons(dst, mid+3, lvl.Colors)
	board.DrawFooter(dst, "1-5 or Arrows + Space: Choose | P: Pause | Q: Quit")
}

func (g *Game) drawButtons(dst *core.Screen, y, colors int) {
	total := colors * buttonWidth
	x := (dst.Width() - total) / 2
	for i := 0; i < colors; i++ {
		sw := Palette[i]
		label := fmt.Sprintf("%d %s", i+1, sw.Name)
		bx := x + i*buttonWidth
		pad := core.Max((buttonWidth-utf8.RuneCountInString(label))/2, 0)
		dst.DrawColorText(bx+pad, y, label, sw.Color)
		if i == g.cursor.Index() {
			dst.SetCell(bx, y, core.Cell{Rune: '[', Color: core.ColorCyan})
			dst.SetCell(bx+buttonWidth-1, y, core.Cell{Rune: ']', Color: core.ColorCyan})
		}
	}
}
