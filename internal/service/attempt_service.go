package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// DefaultSubject labels attempts and imports that carry no subject of their own.
const DefaultSubject = "General"

const missingQuestionText = "Question not found"

var leaderboardLimits = map[int]bool{20: true, 50: true, 100: true}

const defaultLeaderboardLimit = 50

// AttemptService reads stored attempts: history, breakdowns, stats and the accuracy leaderboard.
type AttemptService interface {
	GetHistory(ctx context.Context, userID, faculty string) ([]dto.TestAttemptSummaryDTO, error)
	GetAttemptDetail(ctx context.Context, userID, attemptID string) (*dto.TestAttemptDetailDTO, error)
	GetStats(ctx context.Context, userID string) (*dto.StatsResponseDTO, error)
	GetLeaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntryDTO, error)
}

type attemptService struct {
	testAttemptRepo repository.TestAttemptRepository
	questionRepo    repository.QuestionRepository
	scoreConverter  ScoreConverterService
}

func NewAttemptService(
	testAttemptRepo repository.TestAttemptRepository,
	questionRepo repository.QuestionRepository,
	scoreConverter ScoreConverterService,
) AttemptService {
	return &attemptService{
		testAttemptRepo: testAttemptRepo,
		questionRepo:    questionRepo,
		scoreConverter:  scoreConverter,
	}
}

func (s *attemptService) GetHistory(ctx context.Context, userID, faculty string) ([]dto.TestAttemptSummaryDTO, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	attempts, err := s.testAttemptRepo.FindAllByUser(ctx, userID, faculty)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetHistory: Failed to load attempts")
		return nil, fmt.Errorf("error fetching attempt history: %w", err)
	}

	summaries := make([]dto.TestAttemptSummaryDTO, 0, len(attempts))
	for _, a := range attempts {
		summaries = append(summaries, dto.TestAttemptSummaryDTO{
			ID:        a.ID,
			Score:     a.Score,
			Total:     len(a.Answers),
			TimeTaken: a.TimeTaken,
			Subject:   a.Subject,
			Faculty:   a.Faculty,
			CreatedAt: a.CreatedAt,
		})
	}
	return summaries, nil
}

// GetAttemptDetail only returns attempts owned by userID; anything else is ErrNotFound.
func (s *attemptService) GetAttemptDetail(ctx context.Context, userID, attemptID string) (*dto.TestAttemptDetailDTO, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	attempt, err := s.testAttemptRepo.FindByIDAndUser(ctx, attemptID, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(attempt.Answers))
	for _, a := range attempt.Answers {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Str("attemptID", attemptID).Msg("GetAttemptDetail: Failed to load questions")
		return nil, fmt.Errorf("error fetching attempt questions: %w", err)
	}
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	breakdown := make([]dto.AnswerBreakdownDTO, 0, len(attempt.Answers))
	for _, a := range attempt.Answers {
		row := dto.AnswerBreakdownDTO{
			QuestionID: a.QuestionID,
			Question:   missingQuestionText,
			Selected:   a.SelectedOption,
			Correct:    a.Correct,
		}
		if q, ok := byID[a.QuestionID]; ok {
			row.Question = q.Question
			row.CorrectAnswer = q.CorrectAnswer
			row.Explanation = q.Explanation
		}
		breakdown = append(breakdown, row)
	}

	return &dto.TestAttemptDetailDTO{
		ID:         attempt.ID,
		Score:      attempt.Score,
		Total:      len(attempt.Answers),
		Percentage: s.scoreConverter.ToPercentage(attempt.Score, len(attempt.Answers)),
		TimeTaken:  attempt.TimeTaken,
		Subject:    attempt.Subject,
		CreatedAt:  attempt.CreatedAt,
		Breakdown:  breakdown,
	}, nil
}

func (s *attemptService) GetStats(ctx context.Context, userID string) (*dto.StatsResponseDTO, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	attempts, err := s.testAttemptRepo.FindAllByUser(ctx, userID, "")
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetStats: Failed to load attempts")
		return nil, fmt.Errorf("error fetching stats: %w", err)
	}

	var total dto.StatsTotalDTO
	total.TestsCompleted = len(attempts)
	bySubject := make(map[string]*dto.SubjectStatsDTO)
	for _, a := range attempts {
		subject := a.Subject
		if subject == "" {
			subject = DefaultSubject
		}
		st, ok := bySubject[subject]
		if !ok {
			st = &dto.SubjectStatsDTO{Subject: subject}
			bySubject[subject] = st
		}
		for _, ans := range a.Answers {
			total.Questions++
			st.Total++
			if ans.Correct {
				total.Correct++
				st.Correct++
			} else {
				total.Incorrect++
				st.Incorrect++
			}
		}
	}
	total.Percentage = s.scoreConverter.ToPercentage(total.Correct, total.Questions)

	subjects := make([]dto.SubjectStatsDTO, 0, len(bySubject))
	for _, st := range bySubject {
		st.Percentage = s.scoreConverter.ToPercentage(st.Correct, st.Total)
		subjects = append(subjects, *st)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if subjects[i].Total != subjects[j].Total {
			return subjects[i].Total > subjects[j].Total
		}
		return subjects[i].Subject < subjects[j].Subject
	})

	return &dto.StatsResponseDTO{Total: total, BySubject: subjects}, nil
}

// GetLeaderboard ranks users by accuracy. limit must be 20, 50 or 100; anything else means 50.
func (s *attemptService) GetLeaderboard(ctx context.Context, limit int) ([]dto.LeaderboardEntryDTO, error) {
	if !leaderboardLimits[limit] {
		limit = defaultLeaderboardLimit
	}

	rows, err := s.testAttemptRepo.AccuracyByUser(ctx)
	if err != nil {
		log.Error().Err(err).Msg("GetLeaderboard: Failed to aggregate accuracy")
		return nil, fmt.Errorf("error fetching leaderboard: %w", err)
	}

	entries := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, dto.LeaderboardEntryDTO{
			UserID:           r.UserID,
			TestsCompleted:   r.TestsCompleted,
			TotalQuestions:   r.TotalQuestions,
			CorrectAnswers:   r.CorrectAnswers,
			IncorrectAnswers: r.TotalQuestions - r.CorrectAnswers,
			Accuracy:         s.scoreConverter.ToPercentage(r.CorrectAnswers, r.TotalQuestions),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.Accuracy != b.Accuracy:
			return a.Accuracy > b.Accuracy
		case a.CorrectAnswers != b.CorrectAnswers:
			return a.CorrectAnswers > b.CorrectAnswers
		case a.TestsCompleted != b.TestsCompleted:
			return a.TestsCompleted > b.TestsCompleted
		}
		return a.UserID < b.UserID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
