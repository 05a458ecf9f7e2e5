package rapidmath

import (
	"strconv"
	"testing"

	"github.com/vovakirdan/musclebrain/internal/core"
)

func newTestGame(rec *recorder) *Game {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 9
	cfg.Callbacks = rec.callbacks()
	g.Reset(cfg)
	return g
}

func TestGameDigitsAnswer(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(rec)

	for _, r := range strconv.Itoa(g.engine.Question().Answer) {
		g.Press(100, core.DigitAction(int(r-'0')))
	}
	if g.engine.Phase() != PhaseCorrect {
		t.Fatalf("phase = %v, expected correct", g.engine.Phase())
	}
	if len(rec.updates) != 1 || rec.updates[0].Value != 1 {
		t.Fatalf("updates = %+v", rec.updates)
	}

	if st := g.Step(499, core.NewInputFrame()); st.State.Phase != PhaseCorrect.String() {
		t.Fatalf("phase = %q before the delay", st.State.Phase)
	}
	if st := g.Step(500, core.NewInputFrame()); st.State.Phase != PhasePlaying.String() {
		t.Fatalf("phase = %q after the delay, expected playing", st.State.Phase)
	}
}

func TestGameClearAndNegate(t *testing.T) {
	g := newTestGame(&recorder{})

	g.Press(100, core.ActionNegate)
	g.Press(100, core.ActionClear)
	if g.engine.Entry() != "" {
		t.Errorf("entry = %q, expected empty after clear", g.engine.Entry())
	}
}
