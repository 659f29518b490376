package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/examprep/config"
	"github.com/lshigami/examprep/database"
	"github.com/lshigami/examprep/internal/model"
	"github.com/lshigami/examprep/internal/repository"
	"github.com/lshigami/examprep/internal/service"
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

func testConfig() *config.Config {
	return &config.Config{Quiz: config.Quiz{TimeZone: "UTC", Location: time.UTC}}
}

// movableClock lets a test advance "now" between calls.
type movableClock struct {
	now time.Time
}

func (c *movableClock) Now() time.Time { return c.now }

func fixedClock(t time.Time) service.Clock {
	return func() time.Time { return t }
}

func seedQuestions(t *testing.T, repo repository.QuestionRepository, faculty, subject string, n int) []model.Question {
	t.Helper()
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{
			Question:      fmt.Sprintf("%s question %d?", subject, i),
			Options:       []string{"right", "wrong", "other"},
			CorrectAnswer: "right",
			Subject:       subject,
			Faculty:       faculty,
			Explanation:   "because",
		}
	}
	if err := repo.CreateBatch(context.Background(), qs); err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return qs
}

// stack wires the real repositories over one sqlite database.
type stack struct {
	db           *gorm.DB
	questions    repository.QuestionRepository
	attempts     repository.TestAttemptRepository
	dailySets    repository.DailySetRepository
	streaks      repository.StreakRepository
	bookmarks    repository.BookmarkRepository
	leaderboard  repository.StreakLeaderboardRepository
	streakSvc    service.StreakService
	submitSvc    service.TestSubmissionService
	wrongPoolSvc service.WrongPoolService
	attemptSvc   service.AttemptService
	clock        *movableClock
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db := newTestDB(t)
	s := &stack{
		db:          db,
		questions:   repository.NewQuestionRepository(db),
		attempts:    repository.NewTestAttemptRepository(db),
		dailySets:   repository.NewDailySetRepository(db),
		streaks:     repository.NewStreakRepository(db),
		bookmarks:   repository.NewBookmarkRepository(db),
		leaderboard: repository.NewStreakLeaderboardRepository(nil),
		clock:       &movableClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)},
	}
	s.streakSvc = service.NewStreakService(s.streaks, s.leaderboard, testConfig(), s.clock.Now)
	s.submitSvc = service.NewTestSubmissionService(s.questions, s.attempts, s.streakSvc)
	s.wrongPoolSvc = service.NewWrongPoolService(s.attempts, s.questions)
	s.attemptSvc = service.NewAttemptService(s.attempts, s.questions, service.NewScoreConverterService())
	return s
}
