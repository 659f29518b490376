package service

import (
	"context"
	"fmt"

	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/quiz"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

// WrongPoolDisplayLimit caps how many wrong questions are shown at once.
const WrongPoolDisplayLimit = 10

type WrongPoolService interface {
	GetWrongPool(ctx context.Context, userID, faculty string) ([]dto.QuestionResponseDTO, error)
	CountWrongPool(ctx context.Context, userID, faculty string) (int, error)
}

type wrongPoolService struct {
	testAttemptRepo repository.TestAttemptRepository
	questionRepo    repository.QuestionRepository
}

func NewWrongPoolService(testAttemptRepo repository.TestAttemptRepository, questionRepo repository.QuestionRepository) WrongPoolService {
	return &wrongPoolService{testAttemptRepo: testAttemptRepo, questionRepo: questionRepo}
}

func (s *wrongPoolService) wrongIDs(ctx context.Context, userID, faculty string) ([]string, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	attempts, err := s.testAttemptRepo.FindAllByUser(ctx, userID, faculty)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to load attempt history for wrong pool")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}
	return quiz.LatestWrong(toAttemptViews(attempts)), nil
}

// GetWrongPool resolves the most recent wrong questions. Questions deleted since are skipped.
func (s *wrongPoolService) GetWrongPool(ctx context.Context, userID, faculty string) ([]dto.QuestionResponseDTO, error) {
	ids, err := s.wrongIDs(ctx, userID, faculty)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.QuestionResponseDTO{}, nil
	}

	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to resolve wrong pool questions")
		return nil, fmt.Errorf("error fetching wrong questions: %w", err)
	}
	ordered := orderedByIDs(ids, questions)
	if len(ordered) > WrongPoolDisplayLimit {
		ordered = ordered[:WrongPoolDisplayLimit]
	}
	return toQuestionDTOs(ordered), nil
}

// CountWrongPool is the full pool size, including questions that no longer exist.
func (s *wrongPoolService) CountWrongPool(ctx context.Context, userID, faculty string) (int, error) {
	ids, err := s.wrongIDs(ctx, userID, faculty)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func toAttemptViews(attempts []model.TestAttempt) []quiz.AttemptView {
	views := make([]quiz.AttemptView, 0, len(attempts))
	for _, a := range attempts {
		obs := make([]quiz.Observation, 0, len(a.Answers))
		for _, ans := range a.Answers {
			obs = append(obs, quiz.Observation{QuestionID: ans.QuestionID, Correct: ans.Correct})
		}
		views = append(views, quiz.AttemptView{ID: a.ID, CreatedAt: a.CreatedAt, Answers: obs})
	}
	return views
}
