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

// TestSubmissionService grades and stores finished tests.
type TestSubmissionService interface {
	SubmitTest(ctx context.Context, userID, faculty string, req dto.TestAttemptSubmitDTO) (*dto.SubmitResultDTO, error)
}

type testSubmissionService struct {
	questionRepo    repository.QuestionRepository
	testAttemptRepo repository.TestAttemptRepository
	streakService   StreakService
}

func NewTestSubmissionService(
	questionRepo repository.QuestionRepository,
	testAttemptRepo repository.TestAttemptRepository,
	streakService StreakService,
) TestSubmissionService {
	return &testSubmissionService{
		questionRepo:    questionRepo,
		testAttemptRepo: testAttemptRepo,
		streakService:   streakService,
	}
}

// SubmitTest grades every submitted answer against the stored key and persists the attempt
// with its answers in one transaction. The streak is recorded afterwards; a streak failure
// does not undo the attempt.
func (s *testSubmissionService) SubmitTest(ctx context.Context, userID, faculty string, req dto.TestAttemptSubmitDTO) (*dto.SubmitResultDTO, error) {
	if userID == "" {
		return nil, ErrMissingUser
	}
	if len(req.Answers) == 0 {
		return nil, ErrEmptySubmission
	}

	ids := make([]string, 0, len(req.Answers))
	submissions := make([]quiz.Submission, 0, len(req.Answers))
	for _, a := range req.Answers {
		ids = append(ids, a.QuestionID)
		submissions = append(submissions, quiz.Submission{QuestionID: a.QuestionID, SelectedOption: a.SelectedOption})
	}

	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("SubmitTest: Failed to load answer key")
		return nil, fmt.Errorf("error fetching questions for grading: %w", err)
	}
	key := make(quiz.AnswerKey, len(questions))
	for _, q := range questions {
		key[q.ID] = q.CorrectAnswer
	}
	distinct := uniq(ids)
	if missing := len(distinct) - len(key); missing > 0 {
		log.Warn().Str("userID", userID).Int("missing", missing).Msg("SubmitTest: Submission references unknown questions, grading them incorrect")
	}

	result := quiz.Grade(submissions, key)
	ceiling := quiz.DurationForCount(ceilingCount(len(distinct), len(key), req.SetSize))
	elapsed := quiz.ClampElapsed(req.TimeTaken, ceiling)
	if elapsed != req.TimeTaken {
		log.Debug().Str("userID", userID).Int("reported", req.TimeTaken).Int("stored", elapsed).Msg("SubmitTest: Clamped reported time")
	}

	attempt := model.TestAttempt{
		UserID:    userID,
		Faculty:   faculty,
		Subject:   req.Subject,
		Score:     result.Score,
		TimeTaken: elapsed,
		Answers:   make([]model.Answer, 0, len(result.Answers)),
	}
	for i, g := range result.Answers {
		attempt.Answers = append(attempt.Answers, model.Answer{
			QuestionID:     g.QuestionID,
			SelectedOption: g.SelectedOption,
			Correct:        g.Correct,
			Position:       i,
		})
	}

	if err := s.testAttemptRepo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("SubmitTest: Failed to persist test attempt")
		return nil, fmt.Errorf("error saving test attempt: %w", err)
	}
	log.Info().Str("userID", userID).Str("attemptID", attempt.ID).Int("score", attempt.Score).Int("total", len(attempt.Answers)).Msg("Test attempt stored")

	resp := &dto.SubmitResultDTO{
		AttemptID: attempt.ID,
		Score:     attempt.Score,
		Total:     len(attempt.Answers),
		TimeTaken: attempt.TimeTaken,
	}

	streak, err := s.streakService.RecordActivity(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Str("attemptID", attempt.ID).Msg("SubmitTest: Attempt saved but streak update failed")
		return resp, nil
	}
	resp.Streak = streak
	return resp, nil
}

// ceilingCount is the question count the time limit is derived from. Repeated or
// unknown ids never raise it; a declared set size caps it further.
func ceilingCount(distinct, known, setSize int) int {
	if setSize <= 0 {
		return known
	}
	return min(setSize, distinct)
}

func uniq(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
