package repositories

import (
	"context"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository covers both profile kinds. A user owns at most one
// profile, matching their role.
type ProfileRepository interface {
	CreateStudent(ctx context.Context, p *models.StudentProfile) error
	SaveStudent(ctx context.Context, p *models.StudentProfile) error
	FindStudentByUserID(ctx context.Context, userID uint) (*models.StudentProfile, error)

	CreateCompany(ctx context.Context, p *models.CompanyProfile) error
	SaveCompany(ctx context.Context, p *models.CompanyProfile) error
	FindCompanyByUserID(ctx context.Context, userID uint) (*models.CompanyProfile, error)
	FindCompanyByID(ctx context.Context, id uint) (*models.CompanyProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateStudent(ctx context.Context, p *models.StudentProfile) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProfileRepositoryImpl) SaveStudent(ctx context.Context, p *models.StudentProfile) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *ProfileRepositoryImpl) FindStudentByUserID(ctx context.Context, userID uint) (*models.StudentProfile, error) {
	var p models.StudentProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProfileRepositoryImpl) CreateCompany(ctx context.Context, p *models.CompanyProfile) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProfileRepositoryImpl) SaveCompany(ctx context.Context, p *models.CompanyProfile) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *ProfileRepositoryImpl) FindCompanyByUserID(ctx context.Context, userID uint) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProfileRepositoryImpl) FindCompanyByID(ctx context.Context, id uint) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}
