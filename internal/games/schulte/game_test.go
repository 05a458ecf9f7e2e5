package schulte

import (
	"testing"

	"github.com/vovakirdan/musclebrain/internal/core"
)

func newTestGame(rec *recorder) *Game {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	cfg.Callbacks = rec.callbacks()
	g.Reset(cfg)
	return g
}

func moveTo(g *Game, now int64, index int) {
	size := LevelFor(g.engine.Level()).Size
	for i := 0; i < size; i++ {
		g.Press(now, core.ActionUp)
		g.Press(now, core.ActionLeft)
	}
	for i := 0; i < index/size; i++ {
		g.Press(now, core.ActionDown)
	}
	for i := 0; i < index%size; i++ {
		g.Press(now, core.ActionRight)
	}
}

func TestGameMeasuresMilliseconds(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(rec)

	n := len(g.engine.Grid())
	for v := 1; v <= n; v++ {
		moveTo(g, 1234, cellOf(t, g.engine, v))
		g.Press(1234, core.ActionSelect)
	}
	if len(rec.updates) != 1 || rec.updates[0].Value != 1234 {
		t.Fatalf("updates = %+v, expected total 1234", rec.updates)
	}
}

func TestGameCursorFollowsLevelSize(t *testing.T) {
	rec := &recorder{}
	g := newTestGame(rec)

	n := len(g.engine.Grid())
	for v := 1; v <= n; v++ {
		moveTo(g, 1000, cellOf(t, g.engine, v))
		g.Press(1000, core.ActionSelect)
	}
	st := g.Step(2500, core.NewInputFrame())
	if st.State.Level != 2 {
		t.Fatalf("level = %d, expected 2", st.State.Level)
	}

	size := LevelFor(2).Size
	for i := 0; i < size; i++ {
		g.Press(2500, core.ActionDown)
		g.Press(2500, core.ActionRight)
	}
	if got := g.cursor.Index(); got != size*size-1 {
		t.Errorf("cursor = %d, expected the last cell %d", got, size*size-1)
	}
}
