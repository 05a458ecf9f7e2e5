package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/identity"
	"github.com/vovakirdan/musclebrain/internal/scores"
	"github.com/vovakirdan/musclebrain/internal/storage"
)

// Services are the dependencies shared by every session.
type Services struct {
	Store     *storage.Store   // nil plays without saving
	Recorder  *scores.Recorder // nil drops completions
	Tutorials config.Tutorials
	Logger    *log.Logger
	Practice  bool // keep completions off the leaderboards
}

func (s *Services) logger() *log.Logger {
	if s == nil || s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// bestFor loads the player's stored best, if any.
func (s *Services) bestFor(p identity.Player, slug string) (int, bool) {
	if s == nil || s.Store == nil {
		return 0, false
	}
	best, err := s.Store.BestScore(p.UserID, slug)
	if err != nil {
		s.logger().Warn("could not load best score", "game", slug, "user", p.UserID, "error", err)
		return 0, false
	}
	if best == nil {
		return 0, false
	}
	return best.Score, true
}

func (s *Services) tutorialSeen(p identity.Player, slug string) bool {
	if s == nil || s.Store == nil {
		return false
	}
	seen, err := s.Store.TutorialSeen(p.UserID, slug)
	if err != nil {
		s.logger().Warn("could not read tutorial flag", "game", slug, "error", err)
	}
	return seen
}

func (s *Services) markTutorialSeen(p identity.Player, slug string) {
	if s == nil || s.Store == nil {
		return
	}
	// the flag needs the profile row for joins elsewhere
	if _, err := s.Store.EnsureProfile(p.UserID, p.DisplayName); err != nil {
		s.logger().Warn("could not save profile", "user", p.UserID, "error", err)
		return
	}
	if err := s.Store.MarkTutorialSeen(p.UserID, slug); err != nil {
		s.logger().Warn("could not save tutorial flag", "game", slug, "error", err)
	}
}

func (s *Services) practice() bool {
	return s != nil && s.Practice
}

func (s *Services) record(job scores.Job) {
	if s == nil || s.Recorder == nil {
		return
	}
	job.Practice = s.Practice
	s.Recorder.Enqueue(job)
}
