package repositories

import (
	"context"
	"time"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	Save(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id uint) (*models.Job, error)
	Delete(ctx context.Context, id uint) error

	// Close marks an open job closed. Returns ErrNotFound when the job
	// does not exist or is not open.
	Close(ctx context.Context, id uint) error

	// Reopen sets status back to open only while the deadline has not
	// passed. Returns the number of rows touched; zero means the
	// deadline guard rejected the transition.
	Reopen(ctx context.Context, id uint, today time.Time) (int64, error)

	IncrementViews(ctx context.Context, id uint) error
	FindSimilar(ctx context.Context, job *models.Job, limit int) ([]models.Job, error)

	CountByRecruiter(ctx context.Context, recruiterID uint) (int64, error)
	CountByRecruiterAndStatus(ctx context.Context, recruiterID uint, status models.JobStatus) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return translate(r.db.WithContext(ctx).Create(job).Error)
}

func (r *JobRepositoryImpl) Save(ctx context.Context, job *models.Job) error {
	return translate(r.db.WithContext(ctx).Save(job).Error)
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Close(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND status = ?", id, models.JobStatusOpen).
		Update("status", models.JobStatusClosed)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Reopen(ctx context.Context, id uint, today time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND application_deadline >= ?", id, today).
		Update("status", models.JobStatusOpen)
	return result.RowsAffected, translate(result.Error)
}

func (r *JobRepositoryImpl) IncrementViews(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error)
}

func (r *JobRepositoryImpl) FindSimilar(ctx context.Context, job *models.Job, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("id <> ? AND status = ?", job.ID, models.JobStatusOpen).
		Where("job_type = ? OR location = ?", job.JobType, job.Location).
		Order("posted_date DESC, id ASC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, translate(err)
}

func (r *JobRepositoryImpl) CountByRecruiter(ctx context.Context, recruiterID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("recruiter_id = ?", recruiterID).Count(&count).Error
	return count, translate(err)
}

func (r *JobRepositoryImpl) CountByRecruiterAndStatus(ctx context.Context, recruiterID uint, status models.JobStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("recruiter_id = ? AND status = ?", recruiterID, status).Count(&count).Error
	return count, translate(err)
}
