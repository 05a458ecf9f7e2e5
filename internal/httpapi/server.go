// Package httpapi serves the catalogue, leaderboards and player history as
// JSON over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/musclebrain/internal/leaderboard"
	"github.com/vovakirdan/musclebrain/internal/registry"
	"github.com/vovakirdan/musclebrain/internal/storage"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Store is the read side of persistence the API needs.
type Store interface {
	TopBestScores(slug string, limit int, lowerIsBetter bool) ([]storage.ScoreRecord, error)
	GlobalBest(slug string) (*storage.GlobalBest, error)
	Profile(userID string) (*storage.Profile, error)
	RecentScores(userID, slug string, limit int) ([]storage.ScoreRecord, error)
	Ping() error
}

// Ranking is the leaderboard cache.
type Ranking interface {
	Top(ctx context.Context, slug string, limit int, lowerIsBetter bool) ([]leaderboard.Entry, error)
	Ping(ctx context.Context) error
}

// Server handles HTTP requests.
type Server struct {
	store   Store
	ranking Ranking
	logger  *log.Logger
	started time.Time
}

// NewServer creates a server. ranking may be nil, in which case leaderboards
// are read from the store.
func NewServer(store Store, ranking Ranking, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:   store,
		ranking: ranking,
		logger:  logger,
		started: time.Now(),
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", s.handleListGames)
		r.With(s.gameCtx).Get("/leaderboard/{slug}", s.handleLeaderboard)
		r.With(s.gameCtx).Get("/global-best/{slug}", s.handleGlobalBest)
		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", s.handleProfile)
			r.With(s.gameCtx).Get("/scores/{slug}", s.handleUserScores)
		})
	})

	return r
}

// ListenAndServe runs the API until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type ctxKey struct{}

// gameCtx resolves {slug} to a registered game or answers 404.
func (s *Server) gameCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, ok := registry.Lookup(chi.URLParam(r, "slug"))
		if !ok {
			s.writeError(w, http.StatusNotFound, "unknown game")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, info)))
	})
}

func gameFrom(r *http.Request) registry.Info {
	info, _ := r.Context().Value(ctxKey{}).(registry.Info)
	return info
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// limitParam parses ?limit=, clamped to [1, maxLimit].
func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("limit must be a positive integer")
	}
	return min(n, maxLimit), nil
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("could not encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}
