package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/database"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/repository"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.Database{Driver: "sqlite", Path: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedQuestions(t *testing.T, repo repository.QuestionRepository, faculty, subject string, n int) []model.Question {
	t.Helper()
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{
			Question:      fmt.Sprintf("%s question %d?", subject, i),
			Options:       []string{"a", "b", "c"},
			CorrectAnswer: "a",
			Subject:       subject,
			Faculty:       faculty,
		}
	}
	if err := repo.CreateBatch(context.Background(), qs); err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return qs
}

func TestQuestionRepository_CreateRejectsInvalid(t *testing.T) {
	repo := repository.NewQuestionRepository(newTestDB(t))
	q := &model.Question{Question: "Q?", Options: []string{"a", "b"}, CorrectAnswer: "z", Subject: "Math", Faculty: "Law"}
	if err := repo.Create(context.Background(), q); err == nil {
		t.Fatal("expected error for correct answer outside options")
	}
}

func TestQuestionRepository_FindByFacultyAndSubjects(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(newTestDB(t))
	seedQuestions(t, repo, "Law", "Civil", 3)
	seedQuestions(t, repo, "Law", "Criminal", 2)
	seedQuestions(t, repo, "Medicine", "Anatomy", 4)

	law, err := repo.FindByFaculty(ctx, "Law")
	if err != nil {
		t.Fatal(err)
	}
	if len(law) != 5 {
		t.Errorf("expected 5 Law questions, got %d", len(law))
	}

	again, _ := repo.FindByFaculty(ctx, "Law")
	for i := range law {
		if law[i].ID != again[i].ID {
			t.Fatal("expected stable faculty pool order")
		}
	}

	subjects, err := repo.DistinctSubjects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(subjects) != 3 || subjects[0] != "Anatomy" || subjects[2] != "Criminal" {
		t.Errorf("unexpected subjects %v", subjects)
	}

	count, _ := repo.CountByFaculty(ctx, "Medicine")
	if count != 4 {
		t.Errorf("expected 4, got %d", count)
	}
}

func TestQuestionRepository_DeleteHidesQuestion(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuestionRepository(newTestDB(t))
	qs := seedQuestions(t, repo, "Law", "Civil", 2)

	if err := repo.Delete(ctx, qs[0].ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.FindByID(ctx, qs[0].ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	found, _ := repo.FindByIDs(ctx, []string{qs[0].ID, qs[1].ID})
	if len(found) != 1 {
		t.Errorf("expected only the remaining question, got %d", len(found))
	}
	if err := repo.Delete(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDailySetRepository_DuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDailySetRepository(newTestDB(t))

	first := &model.DailySet{Date: "2024-06-01", Faculty: "Law", Set10: []string{"a"}, Set100: []string{"a", "b"}}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := &model.DailySet{Date: "2024-06-01", Faculty: "Law", Set10: []string{"x"}, Set100: []string{"x"}}
	if err := repo.Create(ctx, second); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	got, err := repo.FindByDateAndFaculty(ctx, "2024-06-01", "Law")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != first.ID || got.Set10[0] != "a" {
		t.Errorf("expected the first set to win, got %+v", got)
	}

	if _, err := repo.FindByDateAndFaculty(ctx, "2024-06-02", "Law"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTestAttemptRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTestAttemptRepository(newTestDB(t))

	older := &model.TestAttempt{UserID: "u1", Faculty: "Law", Score: 1, TimeTaken: 30,
		CreatedAt: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		Answers: []model.Answer{
			{QuestionID: "q2", SelectedOption: "b", Correct: false, Position: 1},
			{QuestionID: "q1", SelectedOption: "a", Correct: true, Position: 0},
		}}
	newer := &model.TestAttempt{UserID: "u1", Faculty: "Medicine", Score: 0, TimeTaken: 10,
		CreatedAt: time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC),
		Answers:   []model.Answer{{QuestionID: "q3", Correct: false, Position: 0}}}
	other := &model.TestAttempt{UserID: "u2", Score: 0, Answers: []model.Answer{{QuestionID: "q1", Position: 0}}}

	for _, a := range []*model.TestAttempt{older, newer, other} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	all, err := repo.FindAllByUser(ctx, "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %d attempts", len(all))
	}

	law, _ := repo.FindAllByUser(ctx, "u1", "Law")
	if len(law) != 1 || law[0].ID != older.ID {
		t.Fatalf("expected only the Law attempt, got %+v", law)
	}
	if law[0].Answers[0].QuestionID != "q1" || law[0].Answers[1].QuestionID != "q2" {
		t.Errorf("expected answers ordered by position, got %+v", law[0].Answers)
	}

	if _, err := repo.FindByIDAndUser(ctx, older.ID, "u2"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected another user's attempt to be not found, got %v", err)
	}

	rows, err := repo.AccuracyByUser(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var u1 repository.UserAccuracyRow
	for _, r := range rows {
		if r.UserID == "u1" {
			u1 = r
		}
	}
	if u1.TestsCompleted != 2 || u1.TotalQuestions != 3 || u1.CorrectAnswers != 1 {
		t.Errorf("unexpected accuracy row %+v", u1)
	}
}

func TestStreakRepository_UpdateCreatesRow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStreakRepository(newTestDB(t))

	empty, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if empty.CurrentStreak != 0 || empty.LastActivityDate != "" {
		t.Errorf("expected zero streak, got %+v", empty)
	}

	if _, err := repo.Update(ctx, "u1", func(s *model.UserStreak) {
		s.CurrentStreak = 2
		s.LongestStreak = 3
		s.LastActivityDate = "2024-06-01"
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Update(ctx, "u1", func(s *model.UserStreak) { s.CurrentStreak++ }); err != nil {
		t.Fatal(err)
	}

	got, _ := repo.Get(ctx, "u1")
	if got.CurrentStreak != 3 || got.LongestStreak != 3 || got.LastActivityDate != "2024-06-01" {
		t.Errorf("unexpected streak %+v", got)
	}
}

func TestBookmarkRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	questions := repository.NewQuestionRepository(db)
	repo := repository.NewBookmarkRepository(db)
	qs := seedQuestions(t, questions, "Law", "Civil", 2)

	if err := repo.Create(ctx, &model.Bookmark{UserID: "u1", QuestionID: qs[0].ID}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, &model.Bookmark{UserID: "u1", QuestionID: qs[0].ID}); !errors.Is(err, repository.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate bookmark, got %v", err)
	}

	list, err := repo.FindByUser(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Question.ID != qs[0].ID {
		t.Fatalf("expected one bookmark with its question, got %+v", list)
	}

	if err := repo.Delete(ctx, "u1", qs[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "u1", qs[0].ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStreakLeaderboardRepository_NilClientIsNoop(t *testing.T) {
	repo := repository.NewStreakLeaderboardRepository(nil)
	if err := repo.UpdateStreak(context.Background(), "u1", 4); err != nil {
		t.Fatal(err)
	}
	top, err := repo.Top(context.Background(), 10)
	if err != nil || len(top) != 0 {
		t.Errorf("expected empty leaderboard, got %v %v", top, err)
	}
}
