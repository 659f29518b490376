package repository

import (
	"context"

	"github.com/lshigami/examprep/internal/model"
	"gorm.io/gorm"
)

// UserAccuracyRow is one user's totals across all attempts.
type UserAccuracyRow struct {
	UserID         string
	TestsCompleted int
	TotalQuestions int
	CorrectAnswers int
}

type TestAttemptRepository interface {
	Create(ctx context.Context, attempt *model.TestAttempt) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.TestAttempt, error)
	FindAllByUser(ctx context.Context, userID, faculty string) ([]model.TestAttempt, error)
	AccuracyByUser(ctx context.Context) ([]UserAccuracyRow, error)
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

// Create stores the attempt and its answers in one transaction.
func (r *testAttemptRepository) Create(ctx context.Context, attempt *model.TestAttempt) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(attempt).Error
	}))
}

func (r *testAttemptRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).
		Preload("Answers", orderByPosition).
		Where("id = ? AND user_id = ?", id, userID).
		First(&attempt).Error
	if err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

// FindAllByUser returns the user's attempts newest first. An empty faculty means every faculty.
func (r *testAttemptRepository) FindAllByUser(ctx context.Context, userID, faculty string) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if faculty != "" {
		query = query.Where("faculty = ?", faculty)
	}
	err := query.
		Preload("Answers", orderByPosition).
		Order("created_at DESC").
		Order("id DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *testAttemptRepository) AccuracyByUser(ctx context.Context) ([]UserAccuracyRow, error) {
	var rows []UserAccuracyRow
	err := r.db.WithContext(ctx).
		Table("test_attempts AS ta").
		Select(`ta.user_id AS user_id,
			COUNT(DISTINCT ta.id) AS tests_completed,
			COUNT(aa.id) AS total_questions,
			COALESCE(SUM(CASE WHEN aa.correct THEN 1 ELSE 0 END), 0) AS correct_answers`).
		Joins("LEFT JOIN attempt_answers AS aa ON aa.test_attempt_id = ta.id").
		Group("ta.user_id").
		Scan(&rows).Error
	return rows, err
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("attempt_answers.position ASC")
}
