package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/musclebrain/internal/leaderboard"
	"github.com/vovakirdan/musclebrain/internal/registry"
)

type gameResponse struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimatedTime"`
	Icon          string `json:"icon"`
	LowerIsBetter bool   `json:"lowerIsBetter"`
	Unit          string `json:"unit"`
}

type leaderboardResponse struct {
	Game    string              `json:"game"`
	Source  string              `json:"source"`
	Entries []leaderboard.Entry `json:"entries"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime"`
	Checks map[string]string `json:"checks"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	infos := registry.List()
	out := make([]gameResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, gameResponse{
			ID:            info.ID,
			Slug:          info.Slug,
			Title:         info.Title,
			Description:   info.Description,
			EstimatedTime: info.EstimatedTime,
			Icon:          info.Icon,
			LowerIsBetter: info.LowerIsBetter,
			Unit:          info.Unit,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	info := gameFrom(r)
	limit, err := limitParam(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.ranking != nil {
		entries, err := s.ranking.Top(r.Context(), info.Slug, limit, info.LowerIsBetter)
		if err == nil {
			s.writeJSON(w, http.StatusOK, leaderboardResponse{Game: info.Slug, Source: "redis", Entries: nonNil(entries)})
			return
		}
		s.logger.Warn("leaderboard cache unavailable, falling back to database", "game", info.Slug, "error", err)
	}

	records, err := s.store.TopBestScores(info.Slug, limit, info.LowerIsBetter)
	if err != nil {
		s.logger.Error("could not load leaderboard", "game", info.Slug, "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not load leaderboard")
		return
	}
	entries := make([]leaderboard.Entry, len(records))
	for i, rec := range records {
		entries[i] = leaderboard.Entry{Rank: i + 1, UserID: rec.UserID, DisplayName: rec.DisplayName, Score: rec.Score}
	}
	s.writeJSON(w, http.StatusOK, leaderboardResponse{Game: info.Slug, Source: "sqlite", Entries: entries})
}

func (s *Server) handleGlobalBest(w http.ResponseWriter, r *http.Request) {
	info := gameFrom(r)
	g, err := s.store.GlobalBest(info.Slug)
	if err != nil {
		s.logger.Error("could not load global best", "game", info.Slug, "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not load global best")
		return
	}
	if g == nil {
		s.writeError(w, http.StatusNotFound, "no scores yet")
		return
	}
	s.writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Profile(chi.URLParam(r, "id"))
	if err != nil {
		s.logger.Error("could not load profile", "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not load profile")
		return
	}
	if p == nil {
		s.writeError(w, http.StatusNotFound, "unknown player")
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUserScores(w http.ResponseWriter, r *http.Request) {
	info := gameFrom(r)
	limit, err := limitParam(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	records, err := s.store.RecentScores(chi.URLParam(r, "id"), info.Slug, limit)
	if err != nil {
		s.logger.Error("could not load scores", "game", info.Slug, "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not load scores")
		return
	}
	s.writeJSON(w, http.StatusOK, nonNil(records))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "healthy",
		Uptime: time.Since(s.started).Round(time.Second).String(),
		Checks: map[string]string{"database": "ok"},
	}
	status := http.StatusOK

	if err := s.store.Ping(); err != nil {
		resp.Status = "unhealthy"
		resp.Checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if s.ranking != nil {
		resp.Checks["redis"] = "ok"
		if err := s.ranking.Ping(r.Context()); err != nil {
			resp.Checks["redis"] = err.Error()
			if resp.Status == "healthy" {
				resp.Status = "degraded"
			}
		}
	}

	s.writeJSON(w, status, resp)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
