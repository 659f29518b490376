package database

import (
	"github.com/lshigami/examprep/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.TestAttempt{},
		&model.Answer{},
		&model.DailySet{},
		&model.UserStreak{},
		&model.Bookmark{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
