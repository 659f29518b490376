package model

import "time"

type Bookmark struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     string    `json:"user_id" gorm:"not null;uniqueIndex:idx_bookmark_user_question,priority:1"`
	QuestionID string    `json:"question_id" gorm:"size:36;not null;uniqueIndex:idx_bookmark_user_question,priority:2"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt  time.Time `json:"created_at"`
}
