package chimp

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
)

type recorder struct {
	updates     []core.ScoreReport
	completions []core.Completion
}

func (r *recorder) callbacks() core.Callbacks {
	return core.Callbacks{
		OnScoreUpdate: func(s core.ScoreReport) { r.updates = append(r.updates, s) },
		OnComplete:    func(c core.Completion) { r.completions = append(r.completions, c) },
	}
}

func newTestEngine(t *testing.T, rec *recorder) *Engine {
	t.Helper()
	e := NewEngine(config.Default().Chimp, rand.New(rand.NewSource(7)), rec.callbacks())
	e.Start(0)
	return e
}

// cellOf returns the board index holding value.
func cellOf(t *testing.T, e *Engine, value int) int {
	t.Helper()
	for i, v := range e.Board() {
		if v == value {
			return i
		}
	}
	t.Fatalf("value %d not on board", value)
	return -1
}

func emptyCell(t *testing.T, e *Engine) int {
	t.Helper()
	for i, v := range e.Board() {
		if v == 0 {
			return i
		}
	}
	t.Fatal("no empty cell")
	return -1
}

func clearLevel(t *testing.T, e *Engine, now int64) {
	t.Helper()
	for n := 1; n <= e.Difficulty().Items; n++ {
		e.Tap(now, cellOf(t, e, n))
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		level          int
		items, preview int
		cols, rows     int
	}{
		{1, 4, 1900, 5, 4},
		{4, 7, 1600, 5, 4},
		{5, 8, 1500, 6, 5},
		{8, 11, 1200, 6, 5},
		{9, 12, 1100, 7, 6},
		{15, 12, 500, 7, 6},
		{20, 12, 500, 7, 6},
	}
	for _, tc := range tests {
		d := LevelFor(tc.level)
		if d.Items != tc.items || d.PreviewMs != tc.preview || d.Cols != tc.cols || d.Rows != tc.rows {
			t.Errorf("LevelFor(%d) = %+v, expected items=%d preview=%d %dx%d",
				tc.level, d, tc.items, tc.preview, tc.cols, tc.rows)
		}
	}
}

func TestPlaceNumbersDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for level := 1; level <= 15; level++ {
		d := LevelFor(level)
		b := PlaceNumbers(rng, d)
		if len(b) != d.Cells() {
			t.Fatalf("level %d: board has %d cells, expected %d", level, len(b), d.Cells())
		}
		var values []int
		for _, v := range b {
			if v != 0 {
				values = append(values, v)
			}
		}
		sort.Ints(values)
		if len(values) != d.Items {
			t.Fatalf("level %d: %d numbers placed, expected %d", level, len(values), d.Items)
		}
		for i, v := range values {
			if v != i+1 {
				t.Fatalf("level %d: numbers are not 1..%d: %v", level, d.Items, values)
			}
		}
	}
}

func TestLevelOneClearAdvancesToLevelTwo(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(t, rec)

	d := e.Difficulty()
	if d.Items != 4 || d.PreviewMs != 1900 || d.Cols != 5 || d.Rows != 4 {
		t.Fatalf("level 1 difficulty = %+v", d)
	}
	if e.Hidden() {
		t.Fatal("numbers should be visible during preview")
	}

	for n := 1; n <= 4; n++ {
		if e.Next() != n {
			t.Fatalf("Next() = %d, expected %d", e.Next(), n)
		}
		e.Tap(100, cellOf(t, e, n))
		if !e.Hidden() {
			t.Fatal("first tap should hide numbers")
		}
	}

	if e.Phase() != PhaseLevelUp {
		t.Fatalf("phase = %v, expected levelUp", e.Phase())
	}
	if len(rec.updates) != 1 || rec.updates[0].Value != 2 {
		t.Fatalf("score updates = %+v, expected one with level 2", rec.updates)
	}

	e.Update(1599)
	if e.Level() != 1 {
		t.Fatal("level advanced before the 1.5s delay")
	}
	e.Update(1600)
	if e.Level() != 2 || e.Phase() != PhasePreview {
		t.Errorf("after delay: level=%d phase=%v, expected 2/preview", e.Level(), e.Phase())
	}
	if e.Difficulty().Items != 5 {
		t.Errorf("level 2 items = %d, expected 5", e.Difficulty().Items)
	}
}

func TestMonotonicPointer(t *testing.T) {
	e := newTestEngine(t, &recorder{})
	prev := e.Next()
	for n := 1; n < e.Difficulty().Items; n++ {
		e.Tap(10, cellOf(t, e, n))
		if e.Next() != prev+1 || e.Next() > e.Difficulty().Items {
			t.Fatalf("pointer went from %d to %d", prev, e.Next())
		}
		prev = e.Next()
	}
	// tapping an already cleared number does nothing
	e.Tap(10, cellOf(t, e, 1))
	if e.Next() != prev || e.Lives() != 3 {
		t.Errorf("re-tap changed state: next=%d lives=%d", e.Next(), e.Lives())
	}
}

func TestWrongTapCostsLifeAndRegenerates(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(t, rec)

	e.Tap(0, cellOf(t, e, 1))
	e.Tap(0, cellOf(t, e, 3))

	if e.Lives() != 2 {
		t.Fatalf("lives = %d, expected 2", e.Lives())
	}
	if cur, max := e.Streak(); cur != 0 || max != 1 {
		t.Errorf("streak = %d/%d, expected 0/1", cur, max)
	}
	if e.Phase() != PhaseFailed {
		t.Fatalf("phase = %v, expected failed", e.Phase())
	}

	e.Update(1000)
	if e.Phase() != PhasePreview || e.Level() != 1 || e.Next() != 1 {
		t.Errorf("after retry delay: phase=%v level=%d next=%d", e.Phase(), e.Level(), e.Next())
	}
	if len(rec.completions) != 0 {
		t.Error("should not complete while lives remain")
	}
}

func TestOutOfLivesCompletesWithMaxLevel(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(t, rec)

	clearLevel(t, e, 0)
	e.Update(1500)

	now := int64(2000)
	for e.Lives() > 0 {
		e.Tap(now, cellOf(t, e, 2))
		now += 1000
		e.Update(now)
	}

	if len(rec.completions) != 1 {
		t.Fatalf("completions = %d, expected 1", len(rec.completions))
	}
	c := rec.completions[0]
	if c.Primary != 2 || c.Secondary != 4 {
		t.Errorf("completion = %+v, expected level 2 and max streak 4", c)
	}
	if !e.Done() {
		t.Error("engine should be done")
	}
}

func TestFinalLevelCompletes(t *testing.T) {
	rec := &recorder{}
	cfg := config.Default().Chimp
	cfg.MaxLevel = 2
	e := NewEngine(cfg, rand.New(rand.NewSource(11)), rec.callbacks())
	e.Start(0)

	clearLevel(t, e, 0)
	e.Update(1500)
	clearLevel(t, e, 2000)
	e.Update(3500)

	if len(rec.completions) != 1 {
		t.Fatalf("completions = %d, expected 1", len(rec.completions))
	}
	if c := rec.completions[0]; c.Primary != 2 || c.Secondary != 9 {
		t.Errorf("completion = %+v, expected level 2 and streak 9", c)
	}
}

func TestEmptyCellOnlyEndsPreview(t *testing.T) {
	e := newTestEngine(t, &recorder{})
	e.Tap(0, emptyCell(t, e))

	if e.Phase() != PhasePlaying || e.Lives() != 3 || e.Next() != 1 {
		t.Errorf("empty tap: phase=%v lives=%d next=%d", e.Phase(), e.Lives(), e.Next())
	}
}

func TestPauseFreezesTransitionsAndInput(t *testing.T) {
	e := newTestEngine(t, &recorder{})
	clearLevel(t, e, 0)

	e.SetPaused(500, true)
	e.Update(5000)
	if e.Level() != 1 {
		t.Fatal("level advanced while paused")
	}
	e.Tap(5000, 0)

	e.SetPaused(6000, false)
	e.Update(6999)
	if e.Level() != 1 {
		t.Fatal("level advanced before remaining delay elapsed")
	}
	e.Update(7000)
	if e.Level() != 2 {
		t.Errorf("level = %d after resumed delay, expected 2", e.Level())
	}
}

func TestPreviewCountdown(t *testing.T) {
	e := newTestEngine(t, &recorder{})
	tests := []struct {
		now      int64
		expected int
	}{
		{0, 2},
		{899, 2},
		{900, 1},
		{1899, 1},
		{1900, 0},
		{5000, 0},
	}
	for _, tc := range tests {
		if got := e.PreviewCountdown(tc.now); got != tc.expected {
			t.Errorf("PreviewCountdown(%d) = %d, expected %d", tc.now, got, tc.expected)
		}
	}
}
