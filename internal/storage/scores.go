package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is one finished session, or a player's best one.
type ScoreRecord struct {
	ID          string         `json:"id,omitempty"`
	UserID      string         `json:"userId"`
	DisplayName string         `json:"displayName,omitempty"`
	GameSlug    string         `json:"gameSlug"`
	Score       int            `json:"score"`
	Level       int            `json:"level,omitempty"` // 0 is stored as NULL
	Accuracy    int            `json:"accuracy,omitempty"`
	HasAccuracy bool           `json:"-"`
	Stats       map[string]int `json:"extraStats,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// GlobalBest is the best score ever recorded for a game.
type GlobalBest struct {
	GameSlug    string    `json:"gameSlug"`
	Score       int       `json:"score"`
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// nullable converts the optional columns of a record.
func (r ScoreRecord) nullable() (level, accuracy sql.NullInt64, stats sql.NullString, err error) {
	if r.Level > 0 {
		level = sql.NullInt64{Int64: int64(r.Level), Valid: true}
	}
	if r.HasAccuracy {
		accuracy = sql.NullInt64{Int64: int64(r.Accuracy), Valid: true}
	}
	if len(r.Stats) > 0 {
		raw, jerr := json.Marshal(r.Stats)
		if jerr != nil {
			return level, accuracy, stats, jerr
		}
		stats = sql.NullString{String: string(raw), Valid: true}
	}
	return level, accuracy, stats, nil
}

// fill sets the optional fields from scanned columns.
func (r *ScoreRecord) fill(level, accuracy sql.NullInt64, stats sql.NullString, created any) {
	if level.Valid {
		r.Level = int(level.Int64)
	}
	if accuracy.Valid {
		r.Accuracy = int(accuracy.Int64)
		r.HasAccuracy = true
	}
	if stats.Valid && stats.String != "" {
		// malformed stats are dropped rather than failing the whole query
		_ = json.Unmarshal([]byte(stats.String), &r.Stats)
	}
	r.CreatedAt = parseTime(created)
}

// SaveScore appends a session to the score history.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(rec ScoreRecord) (string, error) {
	level, accuracy, stats, err := rec.nullable()
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode stats: %w", err)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err = s.db.Exec(
		`INSERT INTO game_scores (id, user_id, game_slug, score, level, accuracy, extra_stats)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.GameSlug, rec.Score, level, accuracy, stats,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return rec.ID, nil
}

// RecentScores retrieves a player's history for a game, newest first.
func (s *Store) RecentScores(userID, slug string, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, user_id, game_slug, score, level, accuracy, extra_stats, created_at
		 FROM game_scores
		 WHERE user_id = ? AND game_slug = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		userID, slug, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var level, accuracy sql.NullInt64
		var stats sql.NullString
		var created any
		if err := rows.Scan(&r.ID, &r.UserID, &r.GameSlug, &r.Score, &level, &accuracy, &stats, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.fill(level, accuracy, stats, created)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns a player's best record for a game, or nil.
func (s *Store) BestScore(userID, slug string) (*ScoreRecord, error) {
	r := ScoreRecord{UserID: userID, GameSlug: slug}
	var level, accuracy sql.NullInt64
	var stats sql.NullString
	var updated any

	err := s.db.QueryRow(
		`SELECT score, level, accuracy, extra_stats, updated_at
		 FROM best_scores WHERE user_id = ? AND game_slug = ?`,
		userID, slug,
	).Scan(&r.Score, &level, &accuracy, &stats, &updated)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	r.fill(level, accuracy, stats, updated)
	return &r, nil
}

// SaveBestScore replaces a player's best record for a game. Deciding
// whether the record is better is the caller's job.
func (s *Store) SaveBestScore(rec ScoreRecord) error {
	level, accuracy, stats, err := rec.nullable()
	if err != nil {
		return fmt.Errorf("storage: cannot encode stats: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO best_scores (user_id, game_slug, score, level, accuracy, extra_stats)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, game_slug) DO UPDATE SET
		   score = excluded.score,
		   level = excluded.level,
		   accuracy = excluded.accuracy,
		   extra_stats = excluded.extra_stats,
		   updated_at = CURRENT_TIMESTAMP`,
		rec.UserID, rec.GameSlug, rec.Score, level, accuracy, stats,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// TopBestScores returns the leaderboard of a game: one best record per
// player, ascending when lowerIsBetter, otherwise descending.
func (s *Store) TopBestScores(slug string, limit int, lowerIsBetter bool) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	order := "DESC"
	if lowerIsBetter {
		order = "ASC"
	}

	rows, err := s.db.Query(
		`SELECT b.user_id, COALESCE(p.display_name, ''), b.score, b.level, b.accuracy, b.extra_stats, b.updated_at
		 FROM best_scores b
		 LEFT JOIN profiles p ON p.user_id = b.user_id
		 WHERE b.game_slug = ?
		 ORDER BY b.score `+order+`, b.updated_at ASC
		 LIMIT ?`,
		slug, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		r := ScoreRecord{GameSlug: slug}
		var level, accuracy sql.NullInt64
		var stats sql.NullString
		var updated any
		if err := rows.Scan(&r.UserID, &r.DisplayName, &r.Score, &level, &accuracy, &stats, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.fill(level, accuracy, stats, updated)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// GlobalBest returns the record holder of a game, or nil.
func (s *Store) GlobalBest(slug string) (*GlobalBest, error) {
	g := GlobalBest{GameSlug: slug}
	var updated any

	err := s.db.QueryRow(
		"SELECT score, user_id, display_name, updated_at FROM global_best WHERE game_slug = ?",
		slug,
	).Scan(&g.Score, &g.UserID, &g.DisplayName, &updated)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query global best: %w", err)
	}

	g.UpdatedAt = parseTime(updated)
	return &g, nil
}

// SaveGlobalBest replaces the record holder of a game.
func (s *Store) SaveGlobalBest(g GlobalBest) error {
	_, err := s.db.Exec(
		`INSERT INTO global_best (game_slug, score, user_id, display_name)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(game_slug) DO UPDATE SET
		   score = excluded.score,
		   user_id = excluded.user_id,
		   display_name = excluded.display_name,
		   updated_at = CURRENT_TIMESTAMP`,
		g.GameSlug, g.Score, g.UserID, g.DisplayName,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save global best: %w", err)
	}
	return nil
}

// ClearScores deletes the history and best scores of a game.
func (s *Store) ClearScores(slug string) error {
	for _, table := range []string{"game_scores", "best_scores", "global_best"} {
		if _, err := s.db.Exec("DELETE FROM "+table+" WHERE game_slug = ?", slug); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}
