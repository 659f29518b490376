package model

type Answer struct {
	ID             uint   `gorm:"primarykey" json:"-"`
	TestAttemptID  string `json:"-" gorm:"size:36;not null;index"`
	QuestionID     string `json:"question_id" gorm:"not null;index"` // may name a question that no longer exists
	SelectedOption string `json:"selected_option"`                   // empty when unanswered
	Correct        bool   `json:"correct" gorm:"not null"`
	Position       int    `json:"position" gorm:"not null"`
}

func (Answer) TableName() string { return "attempt_answers" }
