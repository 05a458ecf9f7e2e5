package visual

import (
	"math/rand"
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

func newTestEngine(rec *recorder) *Engine {
	e := NewEngine(config.Default().Visual, rand.New(rand.NewSource(11)), rec.callbacks())
	e.Start(0)
	return e
}

// reveal runs the countdown and preview that began at start and returns the
// time the board accepts taps.
func reveal(t *testing.T, e *Engine, start int64) int64 {
	t.Helper()
	now := start
	for i := 0; i < 3; i++ {
		if e.Phase() != PhaseCountdown {
			t.Fatalf("phase = %v during countdown step %d", e.Phase(), i)
		}
		now += 500
		e.Update(now)
	}
	if e.Phase() != PhaseShowing {
		t.Fatalf("phase = %v after countdown, expected showing", e.Phase())
	}
	now += int64(e.Difficulty().PreviewMs)
	e.Update(now)
	if e.Phase() != PhasePlaying {
		t.Fatalf("phase = %v after preview, expected playing", e.Phase())
	}
	return now
}

func missCell(e *Engine) int {
	for i := 0; i < e.Difficulty().Cells(); i++ {
		if !e.InPattern(i) {
			return i
		}
	}
	return -1
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		level                int
		grid, tiles, preview int
	}{
		{1, 3, 2, 1920},
		{5, 3, 4, 1600},
		{6, 4, 5, 1520},
		{7, 4, 5, 1440},
		{10, 4, 7, 1200},
		{11, 5, 7, 1120},
		{30, 5, 17, 800},
		{60, 5, 24, 800},
	}
	for _, tc := range tests {
		d := LevelFor(tc.level)
		if d.GridSize != tc.grid || d.Tiles != tc.tiles || d.PreviewMs != tc.preview {
			t.Errorf("LevelFor(%d) = %+v, expected grid %d tiles %d preview %d",
				tc.level, d, tc.grid, tc.tiles, tc.preview)
		}
	}
}

func TestPickPatternUnique(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	d := LevelFor(7)
	for i := 0; i < 100; i++ {
		p := PickPattern(rng, d)
		if len(p) != 5 {
			t.Fatalf("pattern has %d cells, expected 5", len(p))
		}
		seen := map[int]bool{}
		for _, c := range p {
			if c < 0 || c >= 16 || seen[c] {
				t.Fatalf("bad pattern %v", p)
			}
			seen[c] = true
		}
	}
}

func TestTapsIgnoredUntilPlaying(t *testing.T) {
	e := newTestEngine(&recorder{})
	e.Tap(10, e.Pattern()[0])
	if found, _ := e.Progress(); found != 0 {
		t.Fatal("tap during countdown was accepted")
	}
	for now := int64(500); now <= 1500; now += 500 {
		e.Update(now)
	}
	if e.Phase() != PhaseShowing {
		t.Fatalf("phase = %v, expected showing", e.Phase())
	}
	e.Tap(1510, missCell(e))
	if e.Lives() != 3 {
		t.Fatal("tap during preview was judged")
	}
}

func TestClearLevelScores(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)
	now := reveal(t, e, 0)

	first := e.Pattern()[0]
	e.Tap(now, first)
	e.Tap(now, first) // repeated tap on a found tile is ignored
	if found, _ := e.Progress(); found != 1 {
		t.Fatalf("found = %d, expected 1", found)
	}
	for _, c := range e.Pattern()[1:] {
		e.Tap(now, c)
	}

	if e.Phase() != PhaseCorrect || e.Score() != 10 || e.MaxLevel() != 2 {
		t.Fatalf("phase=%v score=%d max=%d, expected correct/10/2", e.Phase(), e.Score(), e.MaxLevel())
	}
	if len(rec.updates) != 1 || rec.updates[0].Value != 10 {
		t.Errorf("updates = %+v", rec.updates)
	}

	e.Update(now + 999)
	if e.Level() != 1 {
		t.Fatal("advanced before the delay")
	}
	e.Update(now + 1000)
	if e.Level() != 2 || e.Phase() != PhaseCountdown {
		t.Errorf("level=%d phase=%v, expected level 2 countdown", e.Level(), e.Phase())
	}
}

func TestStreakBonus(t *testing.T) {
	e := newTestEngine(&recorder{})
	now := int64(0)
	// tiles per level are 2, 3, 3. The streak before the last tap is 1,
	// then 4, then 7, so only level 3 earns the bonus.
	expected := []int{10, 10 + 20, 10 + 20 + (30 + 20)}
	for level := 1; level <= 3; level++ {
		now = reveal(t, e, now)
		for _, c := range e.Pattern() {
			e.Tap(now, c)
		}
		if e.Score() != expected[level-1] {
			t.Errorf("score after level %d = %d, expected %d", level, e.Score(), expected[level-1])
		}
		now += 1000
		e.Update(now)
	}
}

func TestWrongTapRetryAndGameOver(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(rec)

	now := int64(0)
	for lives := 2; lives >= 0; lives-- {
		now = reveal(t, e, now)
		e.Tap(now, missCell(e))
		if e.Lives() != lives || e.Phase() != PhaseWrong {
			t.Fatalf("lives=%d phase=%v, expected %d/wrong", e.Lives(), e.Phase(), lives)
		}
		if cur, _ := e.Streak(); cur != 0 {
			t.Fatal("streak not reset")
		}
		now += 1200
		e.Update(now)
		if lives > 0 && (e.Level() != 1 || e.Phase() != PhaseCountdown) {
			t.Fatalf("expected retry of level 1, got level %d phase %v", e.Level(), e.Phase())
		}
	}

	if len(rec.completions) != 1 {
		t.Fatalf("completions = %d, expected 1", len(rec.completions))
	}
	if c := rec.completions[0]; c.Primary != 0 || c.Secondary != 1 {
		t.Errorf("completion = %+v, expected score 0 max level 1", c)
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	e := newTestEngine(&recorder{})
	e.SetPaused(200, true)
	e.Update(5000)
	if e.Countdown() != 3 {
		t.Fatal("countdown advanced while paused")
	}
	e.SetPaused(5000, false)
	e.Update(5299)
	if e.Countdown() != 3 {
		t.Fatal("countdown lost the time before pause")
	}
	e.Update(5300)
	if e.Countdown() != 2 {
		t.Errorf("countdown = %d, expected 2", e.Countdown())
	}
}
