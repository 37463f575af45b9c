package repositories

import (
	"context"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

type SavedJobRepository interface {
	// Create relies on the (job_id, student_id) unique index; saving an
	// already-saved job surfaces as ErrDuplicate.
	Create(ctx context.Context, saved *models.SavedJob) error
	Delete(ctx context.Context, jobID, studentID uint) (int64, error)
	Exists(ctx context.Context, jobID, studentID uint) (bool, error)
	CountByStudent(ctx context.Context, studentID uint) (int64, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) Create(ctx context.Context, saved *models.SavedJob) error {
	return translate(r.db.WithContext(ctx).Create(saved).Error)
}

func (r *SavedJobRepositoryImpl) Delete(ctx context.Context, jobID, studentID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&models.SavedJob{}, "job_id = ? AND student_id = ?", jobID, studentID)
	return result.RowsAffected, translate(result.Error)
}

func (r *SavedJobRepositoryImpl) Exists(ctx context.Context, jobID, studentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SavedJob{}).
		Where("job_id = ? AND student_id = ?", jobID, studentID).Count(&count).Error
	return count > 0, translate(err)
}

func (r *SavedJobRepositoryImpl) CountByStudent(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SavedJob{}).
		Where("student_id = ?", studentID).Count(&count).Error
	return count, translate(err)
}
