package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/quiz"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	DailyShortSetSize = 10
	DailyLongSetSize  = 100
)

type DailySetService interface {
	// GetDailyTest returns today's set of the given size (10 or 100) for faculty, in set order.
	GetDailyTest(ctx context.Context, faculty string, size int) (*dto.DailyTestResponseDTO, error)
	// GetOrCreateDailySet returns the set for (date, faculty), generating and storing it on first use.
	GetOrCreateDailySet(ctx context.Context, date, faculty string) (*model.DailySet, error)
}

type dailySetService struct {
	dailySetRepo repository.DailySetRepository
	questionRepo repository.QuestionRepository
	loc          *time.Location
	now          Clock
}

func NewDailySetService(
	dailySetRepo repository.DailySetRepository,
	questionRepo repository.QuestionRepository,
	cfg *config.Config,
	clock Clock,
) DailySetService {
	loc := cfg.Quiz.Location
	if loc == nil {
		loc = time.UTC
	}
	return &dailySetService{
		dailySetRepo: dailySetRepo,
		questionRepo: questionRepo,
		loc:          loc,
		now:          clock,
	}
}

// BuildDailySet shuffles pool with the (date, faculty) seed and keeps the first 100 ids.
// The first 10 of those form the short set.
func BuildDailySet(date, faculty string, pool []model.Question) (*model.DailySet, error) {
	if len(pool) < DailyLongSetSize {
		return nil, &InsufficientPoolError{Faculty: faculty, Required: DailyLongSetSize, Actual: len(pool)}
	}

	shuffled := quiz.Shuffle(pool, quiz.DailySeed(date, faculty))
	set100 := make([]string, DailyLongSetSize)
	for i := 0; i < DailyLongSetSize; i++ {
		set100[i] = shuffled[i].ID
	}
	set10 := append([]string(nil), set100[:DailyShortSetSize]...)

	return &model.DailySet{
		Date:    date,
		Faculty: faculty,
		Set10:   set10,
		Set100:  set100,
	}, nil
}

func (s *dailySetService) GetOrCreateDailySet(ctx context.Context, date, faculty string) (*model.DailySet, error) {
	existing, err := s.dailySetRepo.FindByDateAndFaculty(ctx, date, faculty)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Str("date", date).Str("faculty", faculty).Msg("GetOrCreateDailySet: Failed to look up daily set")
		return nil, fmt.Errorf("error fetching daily set: %w", err)
	}

	pool, err := s.questionRepo.FindByFaculty(ctx, faculty)
	if err != nil {
		log.Error().Err(err).Str("faculty", faculty).Msg("GetOrCreateDailySet: Failed to load faculty question pool")
		return nil, fmt.Errorf("error fetching questions for %s: %w", faculty, err)
	}

	set, err := BuildDailySet(date, faculty, pool)
	if err != nil {
		log.Warn().Err(err).Str("faculty", faculty).Int("poolSize", len(pool)).Msg("GetOrCreateDailySet: Cannot build daily set")
		return nil, err
	}

	err = s.dailySetRepo.Create(ctx, set)
	switch {
	case err == nil:
		log.Info().Str("date", date).Str("faculty", faculty).Str("dailySetID", set.ID).Msg("Daily set generated")
		return set, nil
	case errors.Is(err, repository.ErrConflict):
		// another request stored the set first; everyone uses that one
		log.Debug().Str("date", date).Str("faculty", faculty).Msg("GetOrCreateDailySet: Lost creation race, re-reading")
		winner, findErr := s.dailySetRepo.FindByDateAndFaculty(ctx, date, faculty)
		if findErr != nil {
			return nil, fmt.Errorf("error re-reading daily set after conflict: %w", findErr)
		}
		return winner, nil
	default:
		log.Error().Err(err).Str("date", date).Str("faculty", faculty).Msg("GetOrCreateDailySet: Failed to store daily set")
		return nil, fmt.Errorf("error storing daily set: %w", err)
	}
}

func (s *dailySetService) GetDailyTest(ctx context.Context, faculty string, size int) (*dto.DailyTestResponseDTO, error) {
	if faculty == "" {
		return nil, ErrMissingFaculty
	}
	if size != DailyShortSetSize && size != DailyLongSetSize {
		return nil, ErrInvalidSetSize
	}

	today := quiz.Day(s.now(), s.loc)
	set, err := s.GetOrCreateDailySet(ctx, today, faculty)
	if err != nil {
		return nil, err
	}

	ids := set.IDs(size)
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Str("dailySetID", set.ID).Msg("GetDailyTest: Failed to resolve daily set questions")
		return nil, fmt.Errorf("error fetching daily questions: %w", err)
	}
	ordered := orderedByIDs(ids, questions)
	if len(ordered) < len(ids) {
		log.Warn().Str("dailySetID", set.ID).Int("missing", len(ids)-len(ordered)).Msg("GetDailyTest: Some daily questions no longer exist")
	}

	return &dto.DailyTestResponseDTO{
		Date:            set.Date,
		Faculty:         set.Faculty,
		SetSize:         size,
		DurationSeconds: quiz.DurationForCount(size),
		Questions:       toQuestionDTOs(ordered),
	}, nil
}
