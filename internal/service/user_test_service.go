package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/quiz"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	DefaultPracticeCount = 10
	MaxPracticeCount     = 100
)

// UserTestService serves ad-hoc practice tests, which unlike daily sets are not reproducible.
type UserTestService interface {
	GetPracticeTest(ctx context.Context, subject string, count int) (*dto.PracticeTestResponseDTO, error)
	GetSubjects(ctx context.Context) ([]string, error)
}

type userTestService struct {
	questionRepo repository.QuestionRepository
}

func NewUserTestService(questionRepo repository.QuestionRepository) UserTestService {
	return &userTestService{questionRepo: questionRepo}
}

func (s *userTestService) GetPracticeTest(ctx context.Context, subject string, count int) (*dto.PracticeTestResponseDTO, error) {
	switch {
	case count <= 0:
		count = DefaultPracticeCount
	case count > MaxPracticeCount:
		count = MaxPracticeCount
	}

	pool, err := s.questionRepo.FindAll(ctx, subject)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("GetPracticeTest: Failed to load question pool")
		return nil, fmt.Errorf("error fetching practice questions: %w", err)
	}

	sampled := sample(pool, count)
	return &dto.PracticeTestResponseDTO{
		Subject:         subject,
		DurationSeconds: quiz.DurationForCount(len(sampled)),
		Questions:       toQuestionDTOs(sampled),
	}, nil
}

func (s *userTestService) GetSubjects(ctx context.Context) ([]string, error) {
	subjects, err := s.questionRepo.DistinctSubjects(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get subjects from repository")
		return nil, fmt.Errorf("error fetching subjects: %w", err)
	}
	if subjects == nil {
		subjects = []string{}
	}
	return subjects, nil
}

func sample(pool []model.Question, n int) []model.Question {
	shuffled := make([]model.Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}
