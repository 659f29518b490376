package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const StreakLeaderboardKey = "leaderboard:longest_streak"

type StreakLeaderboardEntry struct {
	UserID        string `json:"user_id"`
	LongestStreak int    `json:"longest_streak"`
	Rank          int64  `json:"rank"`
}

// StreakLeaderboardRepository keeps longest streaks in a Redis sorted set.
// A nil client turns every call into a no-op.
type StreakLeaderboardRepository interface {
	UpdateStreak(ctx context.Context, userID string, longest int) error
	Top(ctx context.Context, limit int64) ([]StreakLeaderboardEntry, error)
}

type streakLeaderboardRepository struct {
	client *redis.Client
}

func NewStreakLeaderboardRepository(client *redis.Client) StreakLeaderboardRepository {
	return &streakLeaderboardRepository{client: client}
}

func (r *streakLeaderboardRepository) UpdateStreak(ctx context.Context, userID string, longest int) error {
	if r.client == nil {
		return nil
	}
	// GT keeps the best value if an older update lands late
	return r.client.ZAddGT(ctx, StreakLeaderboardKey, redis.Z{
		Score:  float64(longest),
		Member: userID,
	}).Err()
}

func (r *streakLeaderboardRepository) Top(ctx context.Context, limit int64) ([]StreakLeaderboardEntry, error) {
	entries := []StreakLeaderboardEntry{}
	if r.client == nil || limit <= 0 {
		return entries, nil
	}
	results, err := r.client.ZRevRangeWithScores(ctx, StreakLeaderboardKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	for i, z := range results {
		member, _ := z.Member.(string)
		entries = append(entries, StreakLeaderboardEntry{
			UserID:        member,
			LongestStreak: int(z.Score),
			Rank:          int64(i) + 1,
		})
	}
	return entries, nil
}
