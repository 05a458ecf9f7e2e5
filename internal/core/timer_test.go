package core

import (
	"math/rand"
	"sort"
	"testing"
)

func TestTimerFiresOnce(t *testing.T) {
	var tm Timer
	tm.Arm(1000, 500, 7)

	if _, ok := tm.Fire(1499); ok {
		t.Fatal("timer fired before its deadline")
	}
	kind, ok := tm.Fire(1500)
	if !ok || kind != 7 {
		t.Fatalf("Fire(1500) = (%d, %v), expected (7, true)", kind, ok)
	}
	if _, ok := tm.Fire(5000); ok {
		t.Error("timer fired twice")
	}
}

func TestTimerArmReplacesPending(t *testing.T) {
	var tm Timer
	tm.Arm(0, 100, 1)
	tm.Arm(50, 1000, 2)

	if _, ok := tm.Fire(200); ok {
		t.Fatal("replaced timeout should not fire")
	}
	if kind, ok := tm.Fire(1050); !ok || kind != 2 {
		t.Errorf("Fire(1050) = (%d, %v), expected (2, true)", kind, ok)
	}
}

func TestTimerCancel(t *testing.T) {
	var tm Timer
	tm.Arm(0, 100, 1)
	tm.Cancel()
	if _, ok := tm.Pending(); ok {
		t.Error("Pending() after Cancel should be false")
	}
	if _, ok := tm.Fire(1000); ok {
		t.Error("cancelled timer fired")
	}
}

func TestTimerFreezeThaw(t *testing.T) {
	var tm Timer
	tm.Arm(0, 1000, 3)

	tm.Freeze(400)
	tm.Freeze(600) // second freeze must not change the remainder
	if _, ok := tm.Fire(5000); ok {
		t.Fatal("frozen timer fired")
	}
	if got := tm.Remaining(9000); got != 600 {
		t.Errorf("Remaining while frozen = %d, expected 600", got)
	}

	tm.Thaw(10000)
	if _, ok := tm.Fire(10599); ok {
		t.Fatal("thawed timer fired early")
	}
	if kind, ok := tm.Fire(10600); !ok || kind != 3 {
		t.Errorf("Fire(10600) = (%d, %v), expected (3, true)", kind, ok)
	}
}

func TestStopwatchExcludesPauses(t *testing.T) {
	var sw Stopwatch
	if sw.Elapsed(100) != 0 {
		t.Fatal("unstarted stopwatch should report 0")
	}

	sw.Start(1000)
	sw.Pause(3000)
	sw.Pause(3500) // idempotent
	if got := sw.Elapsed(9000); got != 2000 {
		t.Errorf("Elapsed while paused = %d, expected 2000", got)
	}
	sw.Resume(10000)
	sw.Resume(11000) // idempotent
	if got := sw.Elapsed(12000); got != 4000 {
		t.Errorf("Elapsed after resume = %d, expected 4000", got)
	}

	sw.Pause(13000)
	sw.Resume(20000)
	if got := sw.Elapsed(21000); got != 6000 {
		t.Errorf("Elapsed after two pauses = %d, expected 6000", got)
	}
}

func TestStreak(t *testing.T) {
	var s Streak
	s.Hit()
	s.Hit()
	s.Hit()
	s.Miss()
	if n := s.Hit(); n != 1 {
		t.Errorf("Hit() after Miss = %d, expected 1", n)
	}
	if s.Max() != 3 || s.Current() != 1 {
		t.Errorf("Max=%d Current=%d, expected 3 and 1", s.Max(), s.Current())
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 9, 16, 25, 49} {
		got := Shuffle(rng, n)
		sorted := append([]int(nil), got...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i+1 {
				t.Fatalf("Shuffle(%d) is not a permutation of 1..%d: %v", n, n, got)
			}
		}
	}
}

func TestPickDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		picked := PickDistinct(rng, 16, 5)
		if len(picked) != 5 {
			t.Fatalf("PickDistinct returned %d values, expected 5", len(picked))
		}
		seen := map[int]bool{}
		for _, v := range picked {
			if v < 0 || v >= 16 || seen[v] {
				t.Fatalf("PickDistinct returned invalid set %v", picked)
			}
			seen[v] = true
		}
	}
	if got := PickDistinct(rng, 3, 10); len(got) != 3 {
		t.Errorf("PickDistinct should clamp k to n, got %d values", len(got))
	}
}

func TestIntRange(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		v := IntRange(rng, 800, 2000)
		if v < 800 || v >= 2000 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
	}
	if IntRange(rng, 5, 5) != 5 {
		t.Error("IntRange with empty range should return lo")
	}
}

func TestCallbacksNilSafe(t *testing.T) {
	var cb Callbacks
	cb.ScoreUpdate(ScoreReport{Value: 1})
	cb.Complete(Completion{Primary: 1})

	var got Completion
	cb.OnComplete = func(c Completion) { got = c }
	cb.Complete(Completion{Primary: 42, Secondary: 3})
	if got.Primary != 42 || got.Secondary != 3 {
		t.Errorf("OnComplete received %+v", got)
	}
}
