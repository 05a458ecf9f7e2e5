package scores

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/registry"
	"github.com/vovakirdan/musclebrain/internal/storage"
)

// Store is the persistence the recorder writes to.
type Store interface {
	EnsureProfile(userID, displayName string) (*storage.Profile, error)
	SaveScore(rec storage.ScoreRecord) (string, error)
	BestScore(userID, slug string) (*storage.ScoreRecord, error)
	SaveBestScore(rec storage.ScoreRecord) error
	IncrementGamesPlayed(userID string) error
	GlobalBest(slug string) (*storage.GlobalBest, error)
	SaveGlobalBest(g storage.GlobalBest) error
}

// Ranker receives best scores for fast leaderboards.
type Ranker interface {
	Submit(ctx context.Context, slug, userID, displayName string, score int, lowerIsBetter bool) (bool, error)
}

// Job is one finished session waiting to be persisted.
type Job struct {
	Info        registry.Info
	UserID      string
	DisplayName string
	Completion  core.Completion
	Practice    bool // played on an easy or hard preset
}

// Record converts the job to a history row.
func (j Job) Record() storage.ScoreRecord {
	c := j.Completion
	stats := make(map[string]int, len(c.Stats)+1)
	for k, v := range c.Stats {
		stats[k] = v
	}
	stats["secondary"] = c.Secondary
	if j.Practice {
		stats["practice"] = 1
	}

	return storage.ScoreRecord{
		UserID:      j.UserID,
		DisplayName: j.DisplayName,
		GameSlug:    j.Info.Slug,
		Score:       c.Primary,
		Level:       c.Level,
		Accuracy:    c.Accuracy,
		HasAccuracy: c.HasAccuracy,
		Stats:       stats,
	}
}

const submitTimeout = 2 * time.Second

// Recorder persists completions on a single background worker.
type Recorder struct {
	store  Store
	ranker Ranker
	logger *log.Logger

	mu     sync.Mutex
	closed bool
	jobs   chan Job
	wg     sync.WaitGroup
}

// NewRecorder starts the worker. ranker may be nil.
func NewRecorder(store Store, ranker Ranker, logger *log.Logger, queueSize int) *Recorder {
	if queueSize <= 0 {
		queueSize = 16
	}
	if logger == nil {
		logger = log.Default()
	}
	r := &Recorder{
		store:  store,
		ranker: ranker,
		logger: logger,
		jobs:   make(chan Job, queueSize),
	}
	r.wg.Add(1)
	go r.run()
	return r
}

// Enqueue hands a job to the worker without blocking. A full queue or a
// closed recorder drops the job and reports false.
func (r *Recorder) Enqueue(job Job) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		r.logger.Warn("score recorder closed, dropping result",
			"game", job.Info.Slug,
			"user", job.UserID,
			"score", job.Completion.Primary,
		)
		return false
	}
	select {
	case r.jobs <- job:
		return true
	default:
		r.logger.Warn("score queue full, dropping result",
			"game", job.Info.Slug,
			"user", job.UserID,
			"score", job.Completion.Primary,
		)
		return false
	}
}

// Close stops accepting jobs and waits for the queue to drain.
func (r *Recorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.jobs)
	}
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for job := range r.jobs {
		if err := r.Save(context.Background(), job); err != nil {
			r.logger.Error("could not record score", "game", job.Info.Slug, "user", job.UserID, "error", err)
		}
	}
}

// Save persists one job synchronously: history, personal best, profile
// counter, global best and the leaderboard cache. Practice jobs only reach
// history and the profile counter. Later steps still run when an earlier one
// fails; the first error is returned.
func (r *Recorder) Save(ctx context.Context, job Job) error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	info := job.Info
	rec := job.Record()

	if _, err := r.store.EnsureProfile(job.UserID, job.DisplayName); err != nil {
		return fmt.Errorf("scores: %w", err)
	}

	id, err := r.store.SaveScore(rec)
	keep(err)
	keep(r.store.IncrementGamesPlayed(job.UserID))

	if job.Practice {
		r.logger.Debug("practice score recorded", "id", id, "game", info.Slug, "user", job.UserID, "score", rec.Score)
		if firstErr != nil {
			return fmt.Errorf("scores: %w", firstErr)
		}
		return nil
	}

	best, err := r.store.BestScore(job.UserID, info.Slug)
	keep(err)
	if err == nil && (best == nil || info.Better(rec.Score, best.Score)) {
		keep(r.store.SaveBestScore(rec))
	}

	global, err := r.store.GlobalBest(info.Slug)
	keep(err)
	if err == nil && (global == nil || info.Better(rec.Score, global.Score)) {
		keep(r.store.SaveGlobalBest(storage.GlobalBest{
			GameSlug:    info.Slug,
			Score:       rec.Score,
			UserID:      job.UserID,
			DisplayName: job.DisplayName,
		}))
	}

	if r.ranker != nil {
		sctx, cancel := context.WithTimeout(ctx, submitTimeout)
		_, err := r.ranker.Submit(sctx, info.Slug, job.UserID, job.DisplayName, rec.Score, info.LowerIsBetter)
		cancel()
		keep(err)
	}

	r.logger.Debug("score recorded", "id", id, "game", info.Slug, "user", job.UserID, "score", rec.Score)

	if firstErr != nil {
		return fmt.Errorf("scores: %w", firstErr)
	}
	return nil
}
