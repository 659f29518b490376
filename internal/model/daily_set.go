package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DailySet is the question selection shared by a faculty for one calendar day.
// Set10 is always the first ten ids of Set100.
type DailySet struct {
	ID        string                      `gorm:"primaryKey;size:36" json:"id"`
	Date      string                      `json:"date" gorm:"size:10;not null;uniqueIndex:idx_daily_set_date_faculty,priority:1"` // YYYY-MM-DD
	Faculty   string                      `json:"faculty" gorm:"not null;uniqueIndex:idx_daily_set_date_faculty,priority:2"`
	Set10     datatypes.JSONSlice[string] `json:"set10" gorm:"not null"`
	Set100    datatypes.JSONSlice[string] `json:"set100" gorm:"not null"`
	CreatedAt time.Time                   `json:"created_at"`
}

func (d *DailySet) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// IDs returns the id list for a set size, 10 or 100.
func (d *DailySet) IDs(size int) []string {
	if size == 10 {
		return d.Set10
	}
	return d.Set100
}
