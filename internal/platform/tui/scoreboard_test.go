package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/musclebrain/internal/games"
	"github.com/vovakirdan/musclebrain/internal/identity"
	"github.com/vovakirdan/musclebrain/internal/storage"
)

func TestScoreboardMarksViewer(t *testing.T) {
	svc := testServices(t)
	store := svc.Store

	// Schulte Table opens the lobby, lower totals rank first
	for _, s := range []struct {
		user, name string
		score      int
	}{
		{"u1", "alice", 41000},
		{"u2", "bob", 35000},
		{"u3", "carol", 52000},
	} {
		if _, err := store.EnsureProfile(s.user, s.name); err != nil {
			t.Fatalf("EnsureProfile() failed: %v", err)
		}
		rec := storage.ScoreRecord{UserID: s.user, GameSlug: "schulte-table", Score: s.score}
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if err := store.SaveBestScore(rec); err != nil {
			t.Fatalf("SaveBestScore() failed: %v", err)
		}
	}

	viewer := identity.Player{UserID: "u1", DisplayName: "alice"}
	m := NewScoreboardModel(store, viewer, 100, 30)

	if m.current().Slug != "schulte-table" {
		t.Fatalf("first board = %q, expected schulte-table", m.current().Slug)
	}
	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "bob" || rows[1][1] != "* alice" {
		t.Errorf("Unexpected order: %v", rows)
	}
	if m.table.Cursor() != 1 {
		t.Errorf("Cursor = %d, expected the viewer's row", m.table.Cursor())
	}
	if !strings.Contains(m.View(), "3 sessions by 3 players") {
		t.Error("View() should summarize the game's sessions")
	}
}

func TestScoreboardNavigation(t *testing.T) {
	m := NewScoreboardModel(nil, identity.Player{UserID: "u1"}, 60, 24)
	if len(m.games) < 2 {
		t.Fatalf("Expected the catalogue to be registered, got %d games", len(m.games))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 1 {
		t.Errorf("Tab should move to the next game, cursor = %d", m.gameCursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != len(m.games)-1 {
		t.Errorf("Shift+Tab should wrap around, cursor = %d", m.gameCursor)
	}

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("Boards without a store should render empty")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("Esc should go back without quitting")
	}
}
