package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	_ "github.com/vovakirdan/musclebrain/internal/games"
	"github.com/vovakirdan/musclebrain/internal/leaderboard"
	"github.com/vovakirdan/musclebrain/internal/storage"
)

func setup(t *testing.T, withRedis bool) (*httptest.Server, *storage.Store, *leaderboard.Board) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var board *leaderboard.Board
	var ranking Ranking
	if withRedis {
		mr, err := miniredis.Run()
		if err != nil {
			t.Fatalf("miniredis: %v", err)
		}
		t.Cleanup(mr.Close)
		board = leaderboard.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
		t.Cleanup(func() { board.Close() })
		ranking = board
	}

	srv := NewServer(store, ranking, log.New(io.Discard))
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts, store, board
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestListGames(t *testing.T) {
	ts, _, _ := setup(t, false)

	var games []gameResponse
	if status := getJSON(t, ts.URL+"/api/v1/games", &games); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	expected := []string{"schulte-table", "chimp-test", "reaction-time", "visual-memory", "rapid-math", "stroop-test"}
	if len(games) != len(expected) {
		t.Fatalf("Expected %d games, got %d", len(expected), len(games))
	}
	for i, slug := range expected {
		if games[i].Slug != slug {
			t.Errorf("Position %d: expected %s, got %s", i, slug, games[i].Slug)
		}
	}
	if !games[2].LowerIsBetter {
		t.Error("Reaction time should be lower-is-better")
	}
}

func TestLeaderboardFromDatabase(t *testing.T) {
	ts, store, _ := setup(t, false)

	store.EnsureProfile("u1", "alice")
	store.EnsureProfile("u2", "bob")
	store.SaveBestScore(storage.ScoreRecord{UserID: "u1", GameSlug: "reaction-time", Score: 280})
	store.SaveBestScore(storage.ScoreRecord{UserID: "u2", GameSlug: "reaction-time", Score: 230})

	var resp leaderboardResponse
	if status := getJSON(t, ts.URL+"/api/v1/leaderboard/reaction-time?limit=5", &resp); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if resp.Source != "sqlite" || len(resp.Entries) != 2 {
		t.Fatalf("Unexpected response: %+v", resp)
	}
	if resp.Entries[0].DisplayName != "bob" || resp.Entries[0].Rank != 1 {
		t.Errorf("Expected bob first, got %+v", resp.Entries[0])
	}
}

func TestLeaderboardFromRedis(t *testing.T) {
	ts, _, board := setup(t, true)
	ctx := context.Background()
	board.Submit(ctx, "visual-memory", "u1", "alice", 120, false)
	board.Submit(ctx, "visual-memory", "u2", "bob", 300, false)

	var resp leaderboardResponse
	getJSON(t, ts.URL+"/api/v1/leaderboard/visual-memory", &resp)
	if resp.Source != "redis" || len(resp.Entries) != 2 || resp.Entries[0].DisplayName != "bob" {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestErrors(t *testing.T) {
	ts, _, _ := setup(t, false)

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{"unknown game", "/api/v1/leaderboard/tetris", http.StatusNotFound},
		{"bad limit", "/api/v1/leaderboard/chimp-test?limit=abc", http.StatusBadRequest},
		{"no global best", "/api/v1/global-best/chimp-test", http.StatusNotFound},
		{"unknown user", "/api/v1/users/nobody", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var e errorResponse
			if status := getJSON(t, ts.URL+tc.path, &e); status != tc.expected {
				t.Errorf("status = %d, expected %d", status, tc.expected)
			}
			if e.Error == "" {
				t.Error("Expected an error message")
			}
		})
	}
}

func TestUserEndpoints(t *testing.T) {
	ts, store, _ := setup(t, false)

	store.EnsureProfile("u1", "alice")
	store.IncrementGamesPlayed("u1")
	store.SaveScore(storage.ScoreRecord{UserID: "u1", GameSlug: "rapid-math", Score: 12, Accuracy: 85, HasAccuracy: true})
	store.SaveScore(storage.ScoreRecord{UserID: "u1", GameSlug: "rapid-math", Score: 18, Accuracy: 90, HasAccuracy: true})
	store.SaveGlobalBest(storage.GlobalBest{GameSlug: "rapid-math", Score: 18, UserID: "u1", DisplayName: "alice"})

	var p storage.Profile
	if status := getJSON(t, ts.URL+"/api/v1/users/u1", &p); status != http.StatusOK {
		t.Fatalf("profile status = %d", status)
	}
	if p.DisplayName != "alice" || p.TotalGamesPlayed != 1 {
		t.Errorf("Unexpected profile: %+v", p)
	}

	var history []storage.ScoreRecord
	getJSON(t, ts.URL+"/api/v1/users/u1/scores/rapid-math?limit=1", &history)
	if len(history) != 1 || history[0].Score != 18 {
		t.Errorf("Expected newest score 18, got %+v", history)
	}

	var g storage.GlobalBest
	getJSON(t, ts.URL+"/api/v1/global-best/rapid-math", &g)
	if g.Score != 18 || g.DisplayName != "alice" {
		t.Errorf("Unexpected global best: %+v", g)
	}
}

func TestHealth(t *testing.T) {
	ts, _, _ := setup(t, true)

	var h healthResponse
	if status := getJSON(t, ts.URL+"/healthz", &h); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if h.Status != "healthy" || h.Checks["redis"] != "ok" {
		t.Errorf("Unexpected health: %+v", h)
	}
}
