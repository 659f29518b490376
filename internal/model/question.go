package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID            string                      `gorm:"primaryKey;size:36" json:"id"`
	Question      string                      `json:"question" gorm:"type:text;not null"`
	Options       datatypes.JSONSlice[string] `json:"options" gorm:"not null"`
	CorrectAnswer string                      `json:"correct_answer" gorm:"not null"`
	Subject       string                      `json:"subject" gorm:"not null;index"`
	Faculty       string                      `json:"faculty" gorm:"not null;index"`
	Explanation   string                      `json:"explanation,omitempty" gorm:"type:text"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	DeletedAt     gorm.DeletedAt              `gorm:"index" json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return q.Validate()
}

// Validate enforces the fields every stored question must have.
func (q *Question) Validate() error {
	if q.Question == "" || q.Subject == "" || q.Faculty == "" {
		return fmt.Errorf("question, subject and faculty are required")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question needs at least 2 options, got %d", len(q.Options))
	}
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return nil
		}
	}
	return fmt.Errorf("correct answer %q is not one of the options", q.CorrectAnswer)
}
