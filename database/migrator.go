package database

import (
	"github.com/quivia/quivia-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.QuizQuestion{},
		&entity.UserAnswer{},
		&entity.SessionSummary{},
	)
	return err
}
