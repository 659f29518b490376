package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/quiz"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type StreakService interface {
	RecordActivity(ctx context.Context, userID string) (*dto.StreakResponseDTO, error)
	GetStreak(ctx context.Context, userID string) (*dto.StreakResponseDTO, error)
	TopStreaks(ctx context.Context, limit int64) ([]repository.StreakLeaderboardEntry, error)
}

type streakService struct {
	streakRepo      repository.StreakRepository
	leaderboardRepo repository.StreakLeaderboardRepository
	loc             *time.Location
	now             Clock
}

func NewStreakService(
	streakRepo repository.StreakRepository,
	leaderboardRepo repository.StreakLeaderboardRepository,
	cfg *config.Config,
	clock Clock,
) StreakService {
	loc := cfg.Quiz.Location
	if loc == nil {
		loc = time.UTC
	}
	return &streakService{streakRepo: streakRepo, leaderboardRepo: leaderboardRepo, loc: loc, now: clock}
}

func (s *streakService) RecordActivity(ctx context.Context, userID string) (*dto.StreakResponseDTO, error) {
	now := s.now()
	updated, err := s.streakRepo.Update(ctx, userID, func(row *model.UserStreak) {
		next := quiz.RecordActivity(quiz.Streak{
			Current:          row.CurrentStreak,
			Longest:          row.LongestStreak,
			LastActivityDate: row.LastActivityDate,
		}, now, s.loc)
		row.CurrentStreak = next.Current
		row.LongestStreak = next.Longest
		row.LastActivityDate = next.LastActivityDate
	})
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("RecordActivity: Failed to update streak")
		return nil, fmt.Errorf("error updating streak: %w", err)
	}

	if err := s.leaderboardRepo.UpdateStreak(ctx, userID, updated.LongestStreak); err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("RecordActivity: Failed to update streak leaderboard")
	}

	log.Info().Str("userID", userID).Int("currentStreak", updated.CurrentStreak).Int("longestStreak", updated.LongestStreak).Msg("Streak recorded")
	return toStreakDTO(updated), nil
}

func (s *streakService) GetStreak(ctx context.Context, userID string) (*dto.StreakResponseDTO, error) {
	row, err := s.streakRepo.Get(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetStreak: Failed to load streak")
		return nil, fmt.Errorf("error fetching streak: %w", err)
	}
	return toStreakDTO(row), nil
}

func (s *streakService) TopStreaks(ctx context.Context, limit int64) ([]repository.StreakLeaderboardEntry, error) {
	entries, err := s.leaderboardRepo.Top(ctx, limit)
	if err != nil {
		log.Error().Err(err).Int64("limit", limit).Msg("TopStreaks: Failed to read streak leaderboard")
		return nil, fmt.Errorf("error fetching streak leaderboard: %w", err)
	}
	return entries, nil
}

func toStreakDTO(row *model.UserStreak) *dto.StreakResponseDTO {
	return &dto.StreakResponseDTO{
		CurrentStreak:    row.CurrentStreak,
		LongestStreak:    row.LongestStreak,
		LastActivityDate: row.LastActivityDate,
	}
}
