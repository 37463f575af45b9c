package repositories

import (
	"context"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	// Create relies on the (job_id, student_id) unique index; a second
	// application for the same job surfaces as ErrDuplicate.
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id uint) (*models.Application, error)
	FindByJobAndStudent(ctx context.Context, jobID, studentID uint) (*models.Application, error)
	UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error
	Delete(ctx context.Context, id uint) error

	CountByStudent(ctx context.Context, studentID uint) (int64, error)
	CountByStudentAndStatus(ctx context.Context, studentID uint, status models.ApplicationStatus) (int64, error)
	CountByRecruiter(ctx context.Context, recruiterID uint) (int64, error)
	CountByRecruiterAndStatus(ctx context.Context, recruiterID uint, status models.ApplicationStatus) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.Application) error {
	return translate(r.db.WithContext(ctx).Create(app).Error)
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndStudent(ctx context.Context, jobID, studentID uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		First(&app, "job_id = ? AND student_id = ?", jobID, studentID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status models.ApplicationStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByStudent(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("student_id = ?", studentID).Count(&count).Error
	return count, translate(err)
}

func (r *ApplicationRepositoryImpl) CountByStudentAndStatus(ctx context.Context, studentID uint, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("student_id = ? AND status = ?", studentID, status).Count(&count).Error
	return count, translate(err)
}

func (r *ApplicationRepositoryImpl) CountByRecruiter(ctx context.Context, recruiterID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID).Count(&count).Error
	return count, translate(err)
}

func (r *ApplicationRepositoryImpl) CountByRecruiterAndStatus(ctx context.Context, recruiterID uint, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ? AND applications.status = ?", recruiterID, status).
		Count(&count).Error
	return count, translate(err)
}
