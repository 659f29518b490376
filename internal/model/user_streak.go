package model

import "time"

type UserStreak struct {
	UserID           string    `gorm:"primaryKey" json:"user_id"`
	CurrentStreak    int       `json:"current_streak" gorm:"not null;default:0"`
	LongestStreak    int       `json:"longest_streak" gorm:"not null;default:0"`
	LastActivityDate string    `json:"last_activity_date,omitempty" gorm:"size:10"` // YYYY-MM-DD
	UpdatedAt        time.Time `json:"updated_at"`
}
