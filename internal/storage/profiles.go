package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Profile is a player's record.
type Profile struct {
	UserID           string    `json:"userId"`
	DisplayName      string    `json:"displayName"`
	Email            string    `json:"email,omitempty"`
	AvatarURL        string    `json:"avatarUrl,omitempty"`
	TotalGamesPlayed int       `json:"totalGamesPlayed"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// EnsureProfile returns the profile for userID, creating it on first use.
// An existing profile keeps its counters; a non-empty displayName replaces
// the stored one.
func (s *Store) EnsureProfile(userID, displayName string) (*Profile, error) {
	_, err := s.db.Exec(
		`INSERT INTO profiles (user_id, display_name) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   display_name = CASE WHEN excluded.display_name = '' THEN profiles.display_name ELSE excluded.display_name END,
		   updated_at = CURRENT_TIMESTAMP`,
		userID, displayName,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot save profile: %w", err)
	}

	p, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("storage: profile %s vanished after insert", userID)
	}
	return p, nil
}

// Profile retrieves a profile. Returns nil if it does not exist.
func (s *Store) Profile(userID string) (*Profile, error) {
	var p Profile
	var createdAt, updatedAt any

	err := s.db.QueryRow(
		`SELECT user_id, display_name, email, avatar_url, total_games_played, created_at, updated_at
		 FROM profiles WHERE user_id = ?`,
		userID,
	).Scan(&p.UserID, &p.DisplayName, &p.Email, &p.AvatarURL, &p.TotalGamesPlayed, &createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// IncrementGamesPlayed adds one completed session to the profile counter.
func (s *Store) IncrementGamesPlayed(userID string) error {
	_, err := s.db.Exec(
		`UPDATE profiles
		 SET total_games_played = total_games_played + 1, updated_at = CURRENT_TIMESTAMP
		 WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update games played: %w", err)
	}
	return nil
}

// TutorialSeen reports whether the player has dismissed a game's tutorial.
func (s *Store) TutorialSeen(userID, slug string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM tutorials_seen WHERE user_id = ? AND game_slug = ?",
		userID, slug,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query tutorial flag: %w", err)
	}
	return n > 0, nil
}

// MarkTutorialSeen records that the player has seen a game's tutorial.
func (s *Store) MarkTutorialSeen(userID, slug string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO tutorials_seen (user_id, game_slug) VALUES (?, ?)",
		userID, slug,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save tutorial flag: %w", err)
	}
	return nil
}

// ResetTutorials clears every tutorial flag of the player and returns how
// many were removed.
func (s *Store) ResetTutorials(userID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM tutorials_seen WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot reset tutorials: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count reset tutorials: %w", err)
	}
	return n, nil
}
