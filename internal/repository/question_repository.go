package repository

import (
	"context"

	"github.com/lshigami/examprep/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	CreateBatch(ctx context.Context, questions []model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	FindByIDs(ctx context.Context, ids []string) ([]model.Question, error)
	FindAll(ctx context.Context, subject string) ([]model.Question, error)
	FindByFaculty(ctx context.Context, faculty string) ([]model.Question, error)
	CountByFaculty(ctx context.Context, faculty string) (int64, error)
	DistinctSubjects(ctx context.Context) ([]string, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id string) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return translate(r.db.WithContext(ctx).Create(question).Error)
}

// CreateBatch inserts all questions or none.
func (r *questionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&questions, 100).Error
	}))
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

// FindByIDs returns the questions that still exist, in no particular order.
func (r *questionRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAll(ctx context.Context, subject string) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.WithContext(ctx)
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if err := query.Order("created_at desc").Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// FindByFaculty returns the faculty pool in a stable order so a seeded shuffle of it is reproducible.
func (r *questionRepository) FindByFaculty(ctx context.Context, faculty string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where("faculty = ?", faculty).
		Order("created_at ASC").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByFaculty(ctx context.Context, faculty string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Where("faculty = ?", faculty).Count(&count).Error
	return count, err
}

func (r *questionRepository) DistinctSubjects(ctx context.Context) ([]string, error) {
	var subjects []string
	err := r.db.WithContext(ctx).Model(&model.Question{}).
		Distinct("subject").
		Order("subject ASC").
		Pluck("subject", &subjects).Error
	return subjects, err
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return translate(r.db.WithContext(ctx).Save(question).Error)
}

func (r *questionRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Question{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
