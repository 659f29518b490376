package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/examprep/internal/dto"
	"github.com/lshigami/examprep/internal/service"
)

func answersFor(ids []string, selected ...string) []dto.AnswerSubmitDTO {
	out := make([]dto.AnswerSubmitDTO, len(ids))
	for i, id := range ids {
		out[i] = dto.AnswerSubmitDTO{QuestionID: id}
		if i < len(selected) {
			out[i].SelectedOption = selected[i]
		}
	}
	return out
}

func TestSubmitTest_GradesAndPersists(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	qs := seedQuestions(t, s.questions, faculty, "Algorithms", 3)

	res, err := s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{
		Answers:   answersFor([]string{qs[0].ID, qs[1].ID, qs[2].ID}, "right", "wrong", ""),
		TimeTaken: 120,
		Subject:   "Algorithms",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 1 || res.Total != 3 || res.TimeTaken != 120 {
		t.Errorf("unexpected result %+v", res)
	}
	if res.Streak == nil || res.Streak.CurrentStreak != 1 {
		t.Errorf("expected streak 1 after first submission, got %+v", res.Streak)
	}

	stored, err := s.attempts.FindByIDAndUser(ctx, res.AttemptID, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Score != 1 || len(stored.Answers) != 3 || stored.Faculty != faculty {
		t.Fatalf("unexpected stored attempt %+v", stored)
	}
	correct := 0
	for i, a := range stored.Answers {
		if a.Position != i || a.QuestionID != qs[i].ID {
			t.Errorf("answer %d out of order: %+v", i, a)
		}
		if a.Correct {
			correct++
		}
	}
	if correct != stored.Score {
		t.Errorf("score %d does not match %d correct answers", stored.Score, correct)
	}
}

func TestSubmitTest_ClampsTime(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	qs := seedQuestions(t, s.questions, faculty, "Algorithms", 10)
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}

	res, err := s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{Answers: answersFor(ids), TimeTaken: 99999})
	if err != nil {
		t.Fatal(err)
	}
	stored, _ := s.attempts.FindByIDAndUser(ctx, res.AttemptID, "u1")
	if stored.TimeTaken != 540 || res.TimeTaken != 540 {
		t.Errorf("expected time clamped to 540, got %d/%d", stored.TimeTaken, res.TimeTaken)
	}

	res, _ = s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{Answers: answersFor(ids), TimeTaken: -3})
	if res.TimeTaken != 0 {
		t.Errorf("expected negative time clamped to 0, got %d", res.TimeTaken)
	}
}

func TestSubmitTest_UnknownQuestionIsIncorrect(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	qs := seedQuestions(t, s.questions, faculty, "Algorithms", 1)

	res, err := s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{
		Answers: answersFor([]string{qs[0].ID, "deleted-question"}, "right", "right"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 1 || res.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", res.Score, res.Total)
	}
}

func TestSubmitTest_Rejections(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)

	if _, err := s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{}); !errors.Is(err, service.ErrEmptySubmission) {
		t.Errorf("expected ErrEmptySubmission, got %v", err)
	}
	req := dto.TestAttemptSubmitDTO{Answers: answersFor([]string{"q"})}
	if _, err := s.submitSvc.SubmitTest(ctx, "", faculty, req); !errors.Is(err, service.ErrMissingUser) {
		t.Errorf("expected ErrMissingUser, got %v", err)
	}
}

type failingStreakService struct {
	service.StreakService
}

func (failingStreakService) RecordActivity(context.Context, string) (*dto.StreakResponseDTO, error) {
	return nil, errors.New("streak store down")
}

func TestSubmitTest_StreakFailureKeepsAttempt(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	qs := seedQuestions(t, s.questions, faculty, "Algorithms", 1)
	svc := service.NewTestSubmissionService(s.questions, s.attempts, failingStreakService{})

	res, err := svc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{Answers: answersFor([]string{qs[0].ID}, "right")})
	if err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	if res.Streak != nil {
		t.Errorf("expected no streak in result, got %+v", res.Streak)
	}
	if _, err := s.attempts.FindByIDAndUser(ctx, res.AttemptID, "u1"); err != nil {
		t.Errorf("expected attempt to be stored, got %v", err)
	}
}

func TestSubmitTest_StreakAcrossDays(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	qs := seedQuestions(t, s.questions, faculty, "Algorithms", 1)
	req := dto.TestAttemptSubmitDTO{Answers: answersFor([]string{qs[0].ID}, "right")}

	s.clock.now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	s.submitSvc.SubmitTest(ctx, "u1", faculty, req)
	s.clock.now = time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
	s.submitSvc.SubmitTest(ctx, "u1", faculty, req)
	s.clock.now = time.Date(2024, 6, 2, 7, 0, 0, 0, time.UTC)
	res, err := s.submitSvc.SubmitTest(ctx, "u1", faculty, req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Streak.CurrentStreak != 2 || res.Streak.LongestStreak != 2 {
		t.Errorf("expected streak 2/2, got %+v", res.Streak)
	}
}

func TestSubmitTest_LongUnknownIDsAreStored(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	qs := seedQuestions(t, s.questions, faculty, "Algorithms", 1)
	longID := strings.Repeat("x", 80)
	longUser := "user-" + strings.Repeat("9", 90)

	res, err := s.submitSvc.SubmitTest(ctx, longUser, faculty, dto.TestAttemptSubmitDTO{
		Answers: answersFor([]string{qs[0].ID, longID}, "right", "right"),
	})
	if err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	if res.Score != 1 || res.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", res.Score, res.Total)
	}
	if res.Streak == nil || res.Streak.CurrentStreak != 1 {
		t.Errorf("expected streak recorded for long user id, got %+v", res.Streak)
	}

	stored, err := s.attempts.FindByIDAndUser(ctx, res.AttemptID, longUser)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Answers[1].QuestionID != longID || stored.Answers[1].Correct {
		t.Errorf("expected unknown id stored as incorrect, got %+v", stored.Answers[1])
	}
}

func TestSubmitTest_PaddingDoesNotRaiseTimeLimit(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	qs := seedQuestions(t, s.questions, faculty, "Algorithms", 25)
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}

	// a 10-question test padded to 100 answers with repeats and made-up ids
	padded := make([]string, 0, 100)
	for len(padded) < 50 {
		padded = append(padded, ids[:10]...)
	}
	for i := 0; len(padded) < 100; i++ {
		padded = append(padded, fmt.Sprintf("made-up-%d", i))
	}
	res, err := s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{Answers: answersFor(padded), TimeTaken: 5000})
	if err != nil {
		t.Fatal(err)
	}
	if res.TimeTaken != 540 || res.Total != 100 {
		t.Errorf("expected 100 answers clamped to 540s, got %d answers at %ds", res.Total, res.TimeTaken)
	}

	// 25 real questions would allow 1080s, but the caller declared a 10-question set
	res, err = s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{Answers: answersFor(ids), TimeTaken: 5000, SetSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.TimeTaken != 540 {
		t.Errorf("expected declared set size to cap time at 540, got %d", res.TimeTaken)
	}

	res, _ = s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{Answers: answersFor(ids), TimeTaken: 5000})
	if res.TimeTaken != 1080 {
		t.Errorf("expected 25 distinct questions to allow 1080, got %d", res.TimeTaken)
	}
}

func TestSubmitTest_DeclaredSetSizeCoversDeletedQuestions(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	qs := seedQuestions(t, s.questions, faculty, "Algorithms", 100)
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	if err := s.questions.Delete(ctx, ids[0]); err != nil {
		t.Fatal(err)
	}

	res, err := s.submitSvc.SubmitTest(ctx, "u1", faculty, dto.TestAttemptSubmitDTO{Answers: answersFor(ids), TimeTaken: 5000, SetSize: 100})
	if err != nil {
		t.Fatal(err)
	}
	if res.TimeTaken != 5000 {
		t.Errorf("expected a full daily set to keep its 5400s limit, got %d", res.TimeTaken)
	}
}
