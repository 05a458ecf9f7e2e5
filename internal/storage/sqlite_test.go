package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestProfileLifecycle(t *testing.T) {
	store := openTestStore(t)

	p, err := store.Profile("u1")
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if p != nil {
		t.Fatal("Expected nil profile before creation")
	}

	p, err = store.EnsureProfile("u1", "alice")
	if err != nil {
		t.Fatalf("EnsureProfile() failed: %v", err)
	}
	if p.DisplayName != "alice" || p.TotalGamesPlayed != 0 {
		t.Errorf("Unexpected new profile: %+v", p)
	}

	for i := 0; i < 3; i++ {
		if err := store.IncrementGamesPlayed("u1"); err != nil {
			t.Fatalf("IncrementGamesPlayed() failed: %v", err)
		}
	}

	// Second call keeps counters and the name when none is given
	p, err = store.EnsureProfile("u1", "")
	if err != nil {
		t.Fatalf("EnsureProfile() failed: %v", err)
	}
	if p.TotalGamesPlayed != 3 || p.DisplayName != "alice" {
		t.Errorf("Expected 3 games for alice, got %+v", p)
	}
}

func TestSaveAndRecentScores(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{100, 50, 200} {
		_, err := store.SaveScore(ScoreRecord{
			UserID:   "u1",
			GameSlug: "chimp-test",
			Score:    score,
			Level:    i + 1,
			Stats:    map[string]int{"maxStreak": i},
		})
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game and user
	store.SaveScore(ScoreRecord{UserID: "u1", GameSlug: "rapid-math", Score: 5, Accuracy: 80, HasAccuracy: true})
	store.SaveScore(ScoreRecord{UserID: "u2", GameSlug: "chimp-test", Score: 999})

	scores, err := store.RecentScores("u1", "chimp-test", 10)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Newest first
	if scores[0].Score != 200 || scores[2].Score != 100 {
		t.Errorf("Expected newest first, got %d..%d", scores[0].Score, scores[2].Score)
	}
	if scores[0].Level != 3 || scores[0].Stats["maxStreak"] != 2 {
		t.Errorf("Optional columns not restored: %+v", scores[0])
	}
	if scores[0].HasAccuracy {
		t.Error("Accuracy should be NULL when not reported")
	}
	if scores[0].ID == "" {
		t.Error("Expected a generated ID")
	}

	limited, _ := store.RecentScores("u1", "chimp-test", 2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}

	math, _ := store.RecentScores("u1", "rapid-math", 10)
	if len(math) != 1 || !math[0].HasAccuracy || math[0].Accuracy != 80 {
		t.Errorf("Accuracy not restored: %+v", math)
	}
}

func TestBestScores(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("u1", "schulte-table")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != nil {
		t.Fatal("Expected nil best score before any save")
	}

	store.EnsureProfile("u1", "alice")
	store.EnsureProfile("u2", "bob")
	store.EnsureProfile("u3", "carol")

	store.SaveBestScore(ScoreRecord{UserID: "u1", GameSlug: "schulte-table", Score: 9000, Level: 7})
	store.SaveBestScore(ScoreRecord{UserID: "u1", GameSlug: "schulte-table", Score: 7000, Level: 7})
	store.SaveBestScore(ScoreRecord{UserID: "u2", GameSlug: "schulte-table", Score: 8000, Level: 7})
	store.SaveBestScore(ScoreRecord{UserID: "u3", GameSlug: "schulte-table", Score: 12000, Level: 7})

	best, err = store.BestScore("u1", "schulte-table")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best == nil || best.Score != 7000 {
		t.Fatalf("Expected upserted best 7000, got %+v", best)
	}

	tests := []struct {
		name          string
		lowerIsBetter bool
		expected      []string
	}{
		{"lower is better", true, []string{"alice", "bob", "carol"}},
		{"higher is better", false, []string{"carol", "bob", "alice"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			top, err := store.TopBestScores("schulte-table", 10, tc.lowerIsBetter)
			if err != nil {
				t.Fatalf("TopBestScores() failed: %v", err)
			}
			if len(top) != len(tc.expected) {
				t.Fatalf("Expected %d entries, got %d", len(tc.expected), len(top))
			}
			for i, name := range tc.expected {
				if top[i].DisplayName != name {
					t.Errorf("Position %d: expected %s, got %s", i, name, top[i].DisplayName)
				}
			}
		})
	}
}

func TestGlobalBest(t *testing.T) {
	store := openTestStore(t)

	g, err := store.GlobalBest("reaction-time")
	if err != nil {
		t.Fatalf("GlobalBest() failed: %v", err)
	}
	if g != nil {
		t.Fatal("Expected nil global best")
	}

	store.SaveGlobalBest(GlobalBest{GameSlug: "reaction-time", Score: 250, UserID: "u1", DisplayName: "alice"})
	store.SaveGlobalBest(GlobalBest{GameSlug: "reaction-time", Score: 210, UserID: "u2", DisplayName: "bob"})

	g, err = store.GlobalBest("reaction-time")
	if err != nil {
		t.Fatalf("GlobalBest() failed: %v", err)
	}
	if g.Score != 210 || g.DisplayName != "bob" {
		t.Errorf("Expected bob with 210, got %+v", g)
	}
}

func TestTutorialFlags(t *testing.T) {
	store := openTestStore(t)

	seen, err := store.TutorialSeen("u1", "stroop-test")
	if err != nil {
		t.Fatalf("TutorialSeen() failed: %v", err)
	}
	if seen {
		t.Fatal("Tutorial should not be seen initially")
	}

	store.MarkTutorialSeen("u1", "stroop-test")
	store.MarkTutorialSeen("u1", "stroop-test") // idempotent
	store.MarkTutorialSeen("u1", "chimp-test")
	store.MarkTutorialSeen("u2", "chimp-test")

	if seen, _ := store.TutorialSeen("u1", "stroop-test"); !seen {
		t.Error("Expected tutorial to be seen")
	}

	n, err := store.ResetTutorials("u1")
	if err != nil {
		t.Fatalf("ResetTutorials() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 flags removed, got %d", n)
	}
	if seen, _ := store.TutorialSeen("u2", "chimp-test"); !seen {
		t.Error("Other players' flags should not be affected")
	}
}

func TestGameStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreRecord{UserID: "u1", GameSlug: "visual-memory", Score: 100})
	store.SaveScore(ScoreRecord{UserID: "u2", GameSlug: "visual-memory", Score: 300})
	store.SaveScore(ScoreRecord{UserID: "u1", GameSlug: "stroop-test", Score: 50})

	stats, err := store.GameStats("visual-memory")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.LowScore != 100 || stats.Players != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}

	all, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 games, got %d", len(all))
	}

	if err := store.ClearScores("visual-memory"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	empty, _ := store.GameStats("visual-memory")
	if empty.GamesCount != 0 {
		t.Errorf("Expected 0 games after clear, got %d", empty.GamesCount)
	}
	other, _ := store.GameStats("stroop-test")
	if other.GamesCount != 1 {
		t.Error("Stroop scores should not be affected by clearing visual memory")
	}
}
