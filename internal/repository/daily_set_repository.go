package repository

import (
	"context"

	"github.com/lshigami/examprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailySetRepository interface {
	FindByDateAndFaculty(ctx context.Context, date, faculty string) (*model.DailySet, error)
	// Create returns ErrConflict when a set for (date, faculty) already exists.
	Create(ctx context.Context, set *model.DailySet) error
}

type dailySetRepository struct {
	db *gorm.DB
}

func NewDailySetRepository(db *gorm.DB) DailySetRepository {
	return &dailySetRepository{db: db}
}

func (r *dailySetRepository) FindByDateAndFaculty(ctx context.Context, date, faculty string) (*model.DailySet, error) {
	var set model.DailySet
	err := r.db.WithContext(ctx).
		Where("date = ? AND faculty = ?", date, faculty).
		First(&set).Error
	if err != nil {
		return nil, translate(err)
	}
	return &set, nil
}

func (r *dailySetRepository) Create(ctx context.Context, set *model.DailySet) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "faculty"}},
			DoNothing: true,
		}).
		Create(set)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}
