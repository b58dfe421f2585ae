package leaderboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const key = "gamification:xp"

// Entry represents one row of the lifetime XP leaderboard.
type Entry struct {
	UserID string  `json:"user_id"`
	XP     float64 `json:"xp"`
}

// Board tracks lifetime XP per user in a Redis sorted set. Lifetime XP keeps
// counting even when the progression record resets its remainder on level-up.
type Board struct {
	rdb *redis.Client
}

// NewBoard creates a leaderboard over the given Redis client.
func NewBoard(rdb *redis.Client) *Board {
	return &Board{rdb: rdb}
}

func memberName(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}

func parseMember(member string) (string, error) {
	parts := strings.SplitN(member, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", fmt.Errorf("invalid member %q", member)
	}
	return parts[1], nil
}

// Add credits XP to a user's lifetime total.
func (b *Board) Add(ctx context.Context, userID string, amount int) error {
	return b.rdb.ZIncrBy(ctx, key, float64(amount), memberName(userID)).Err()
}

// Top returns the highest lifetime XP holders, best first.
func (b *Board) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	members, err := b.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(members))
	for _, m := range members {
		member, ok := m.Member.(string)
		if !ok {
			continue
		}
		userID, err := parseMember(member)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{UserID: userID, XP: m.Score})
	}
	return entries, nil
}
