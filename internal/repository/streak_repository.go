package repository

import (
	"context"

	"github.com/lshigami/examprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepository interface {
	// Get returns a zero streak for users that were never active.
	Get(ctx context.Context, userID string) (*model.UserStreak, error)
	// Update runs fn on the stored streak and saves the result in one transaction.
	Update(ctx context.Context, userID string, fn func(*model.UserStreak)) (*model.UserStreak, error)
}

type streakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) Get(ctx context.Context, userID string) (*model.UserStreak, error) {
	return findStreak(r.db.WithContext(ctx), userID, false)
}

func (r *streakRepository) Update(ctx context.Context, userID string, fn func(*model.UserStreak)) (*model.UserStreak, error) {
	var out *model.UserStreak
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		streak, err := findStreak(tx, userID, true)
		if err != nil {
			return err
		}
		fn(streak)
		if err := tx.Save(streak).Error; err != nil {
			return err
		}
		out = streak
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func findStreak(db *gorm.DB, userID string, forUpdate bool) (*model.UserStreak, error) {
	var streak model.UserStreak
	query := db
	if forUpdate && db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	res := query.Where("user_id = ?", userID).Limit(1).Find(&streak)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return &model.UserStreak{UserID: userID}, nil
	}
	return &streak, nil
}
