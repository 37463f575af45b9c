package database

import (
	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema. The composite unique indexes
// on applications and saved_jobs come from the model tags and back the
// duplicate-detection paths.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.CompanyProfile{},
		&models.Job{},
		&models.Application{},
		&models.SavedJob{},
	)
}
