// Package leaderboard keeps per-game best scores in Redis sorted sets so
// rankings can be served without touching SQLite.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "musclebrain:lb:"

// Entry is one ranked player.
type Entry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
}

// Board is a Redis-backed leaderboard.
type Board struct {
	rdb *redis.Client
}

// New wraps an existing client.
func New(rdb *redis.Client) *Board {
	return &Board{rdb: rdb}
}

// Connect parses a redis:// URL, pings the server and returns a Board.
func Connect(ctx context.Context, url string) (*Board, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("leaderboard: redis url is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("leaderboard: redis ping: %w", err)
	}
	return &Board{rdb: rdb}, nil
}

// Close releases the client.
func (b *Board) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}

func scoresKey(slug string) string { return keyPrefix + slug }
func namesKey(slug string) string  { return keyPrefix + slug + ":names" }

// Submit records score for a player if it beats the player's stored one.
// Reports whether the board changed.
func (b *Board) Submit(ctx context.Context, slug, userID, displayName string, score int, lowerIsBetter bool) (bool, error) {
	args := redis.ZAddArgs{
		GT:      !lowerIsBetter,
		LT:      lowerIsBetter,
		Ch:      true,
		Members: []redis.Z{{Score: float64(score), Member: userID}},
	}

	pipe := b.rdb.TxPipeline()
	changed := pipe.ZAddArgs(ctx, scoresKey(slug), args)
	if displayName != "" {
		pipe.HSet(ctx, namesKey(slug), userID, displayName)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("leaderboard: cannot submit score: %w", err)
	}
	return changed.Val() > 0, nil
}

// Top returns the best limit players, best first.
func (b *Board) Top(ctx context.Context, slug string, limit int, lowerIsBetter bool) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	zs, err := b.rdb.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
		Key:   scoresKey(slug),
		Start: 0,
		Stop:  int64(limit - 1),
		Rev:   !lowerIsBetter,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot read %s: %w", slug, err)
	}
	if len(zs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(zs))
	for i, z := range zs {
		ids[i], _ = z.Member.(string)
	}
	names, err := b.rdb.HMGet(ctx, namesKey(slug), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot read names: %w", err)
	}

	entries := make([]Entry, len(zs))
	for i, z := range zs {
		name, _ := names[i].(string)
		entries[i] = Entry{
			Rank:        i + 1,
			UserID:      ids[i],
			DisplayName: name,
			Score:       int(z.Score),
		}
	}
	return entries, nil
}

// Rank returns the 1-based position of a player, or 0 if absent.
func (b *Board) Rank(ctx context.Context, slug, userID string, lowerIsBetter bool) (int, error) {
	var cmd *redis.IntCmd
	if lowerIsBetter {
		cmd = b.rdb.ZRank(ctx, scoresKey(slug), userID)
	} else {
		cmd = b.rdb.ZRevRank(ctx, scoresKey(slug), userID)
	}
	rank, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("leaderboard: cannot rank %s: %w", userID, err)
	}
	return int(rank) + 1, nil
}

// Size returns the number of ranked players.
func (b *Board) Size(ctx context.Context, slug string) (int64, error) {
	n, err := b.rdb.ZCard(ctx, scoresKey(slug)).Result()
	if err != nil {
		return 0, fmt.Errorf("leaderboard: cannot count %s: %w", slug, err)
	}
	return n, nil
}

// Ping checks the connection.
func (b *Board) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}
