package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestAttempt is one graded submission. It is written once and never updated.
type TestAttempt struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `json:"user_id" gorm:"not null;index:idx_attempt_user_created,priority:1"`
	Faculty   string    `json:"faculty,omitempty" gorm:"index"`
	Subject   string    `json:"subject,omitempty"`
	Score     int       `json:"score" gorm:"not null"`
	TimeTaken int       `json:"time_taken" gorm:"not null"` // seconds, already clamped
	Answers   []Answer  `json:"answers,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_attempt_user_created,priority:2"`
}

func (a *TestAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
