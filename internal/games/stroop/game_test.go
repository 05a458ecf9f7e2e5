package stroop

import (
	"testing"

	"github.com/vovakirdan/musclebrain/internal/core"
)

func newTestGame(rec *recorder) *Game {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 13
	cfg.Callbacks = rec.callbacks()
	g.Reset(cfg)
	return g
}

func TestGameDigitPicksColor(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(rec)

	g.engine.round = Round{Word: 0, Ink: 1}
	g.Press(300, core.DigitAction(2))
	if g.engine.Phase() != PhaseCorrect || g.engine.Correct() != 1 {
		t.Fatalf("phase=%v correct=%d, expected digit 2 to pick color 1", g.engine.Phase(), g.engine.Correct())
	}
	if st := g.Step(600, core.NewInputFrame()); st.State.Phase != PhasePlaying.String() {
		t.Errorf("phase = %q after the delay, expected playing", st.State.Phase)
	}
}

func TestGameCursorSelect(t *testing.T) {
	g := newTestGame(&recorder{})

	g.engine.round = Round{Word: 2, Ink: 3}
	for i := 0; i < g.engine.Level().Colors; i++ {
		g.Press(100, core.ActionLeft)
	}
	for i := 0; i < 3; i++ {
		g.Press(100, core.ActionRight)
	}
	g.Press(100, core.ActionSelect)
	if g.engine.Correct() != 1 {
		t.Errorf("correct = %d, expected the cursor pick to match", g.engine.Correct())
	}
}
