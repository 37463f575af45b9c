package services

import (
	"context"
	"errors"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
)

type ApplicationService interface {
	Apply(ctx context.Context, actor models.Actor, jobID uint, req *dto.ApplyRequest) (*dto.ApplicationResponse, *apperrors.AppError)
	UpdateStatus(ctx context.Context, actor models.Actor, applicationID uint, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, *apperrors.AppError)

	// Get is the recruiter's full view of one application, cover letter
	// and applicant profile included. Same ownership gate as the resume
	// download.
	Get(ctx context.Context, actor models.Actor, applicationID uint) (*dto.ApplicationDetailResponse, *apperrors.AppError)
	Withdraw(ctx context.Context, actor models.Actor, applicationID uint) *apperrors.AppError

	ListForRecruiter(ctx context.Context, actor models.Actor, params query.Params) (*dto.ApplicationListResponse, *apperrors.AppError)
	ListForStudent(ctx context.Context, actor models.Actor, params query.Params) (*dto.ApplicationListResponse, *apperrors.AppError)

	// ResumePath resolves the applicant's resume for download, gated on
	// the recruiter owning the job the application belongs to.
	ResumePath(ctx context.Context, actor models.Actor, applicationID uint) (string, *apperrors.AppError)
}

type ApplicationServiceImpl struct {
	appRepo     repositories.ApplicationRepository
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	listings    repositories.ListingRepository
	mailer      email.Provider
	clock       Clock
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	listings repositories.ListingRepository,
	mailer email.Provider,
	clock Clock,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		listings:    listings,
		mailer:      mailer,
		clock:       clock,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, actor models.Actor, jobID uint, req *dto.ApplyRequest) (*dto.ApplicationResponse, *apperrors.AppError) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	if job.Status != models.JobStatusOpen || job.Expired(s.clock.Now()) {
		return nil, apperrors.ErrJobNotOpen
	}

	profile, err := s.profileRepo.FindStudentByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrMissingResume
		}
		return nil, apperrors.StorageError(err)
	}
	if profile.ResumePath == "" {
		return nil, apperrors.ErrMissingResume
	}

	app := &models.Application{
		JobID:       jobID,
		StudentID:   actor.UserID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		// The unique index on (job_id, student_id) decides; no pre-check.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "application submitted", "job_id", jobID, "student_id", actor.UserID)
	return toApplicationResponse(app), nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, actor models.Actor, applicationID uint, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, *apperrors.AppError) {
	status, err := models.ParseApplicationStatus(req.Status)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid application status")
	}

	app, job, appErr := s.recruiterApplication(ctx, actor, applicationID)
	if appErr != nil {
		return nil, appErr
	}

	// Any status may move to any other; the review flow is not a
	// one-way ladder.
	if err := s.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	app.Status = status
	logger.CtxInfo(ctx, "application status updated",
		"application_id", applicationID, "status", string(status))

	s.notifyStudent(app, job)
	return toApplicationResponse(app), nil
}

func (s *ApplicationServiceImpl) Get(ctx context.Context, actor models.Actor, applicationID uint) (*dto.ApplicationDetailResponse, *apperrors.AppError) {
	app, job, appErr := s.recruiterApplication(ctx, actor, applicationID)
	if appErr != nil {
		return nil, appErr
	}

	detail := &dto.ApplicationDetailResponse{
		ID:              app.ID,
		JobID:           app.JobID,
		JobTitle:        job.Title,
		Status:          app.Status,
		ApplicationDate: app.ApplicationDate,
		CoverLetter:     app.CoverLetter,
		Applicant:       dto.ApplicantDTO{StudentID: app.StudentID},
	}

	// Profile and account rows may lag behind the application (the
	// student can empty their profile later); whatever exists is shown.
	if profile, err := s.profileRepo.FindStudentByUserID(ctx, app.StudentID); err == nil {
		detail.Applicant.FullName = profile.FullName
		detail.Applicant.Phone = profile.Phone
		detail.Applicant.Address = profile.Address
		detail.Applicant.Education = profile.Education
		detail.Applicant.Skills = profile.Skills
		detail.Applicant.Experience = profile.Experience
		detail.Applicant.HasResume = profile.ResumePath != ""
	}
	if user, err := s.userRepo.FindByID(ctx, app.StudentID); err == nil {
		detail.Applicant.Email = user.Email
		if detail.Applicant.FullName == "" {
			detail.Applicant.FullName = user.Username
		}
	}

	return detail, nil
}

func (s *ApplicationServiceImpl) Withdraw(ctx context.Context, actor models.Actor, applicationID uint) *apperrors.AppError {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.StorageError(err)
	}
	if app.StudentID != actor.UserID {
		return apperrors.ErrForbidden
	}
	if app.Status != models.ApplicationStatusPending {
		return apperrors.ErrInvalidState
	}

	if err := s.appRepo.Delete(ctx, applicationID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "application withdrawn", "application_id", applicationID)
	return nil
}

func (s *ApplicationServiceImpl) ListForRecruiter(ctx context.Context, actor models.Actor, params query.Params) (*dto.ApplicationListResponse, *apperrors.AppError) {
	filter := query.ParseApplicationFilter(params)
	q := query.CompileRecruiterApplications(actor.UserID, filter)

	total, err := s.listings.CountRecruiterApplications(ctx, q)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	window := query.NewPageWindow(total, filter.Page, query.DefaultPageSize)
	rows, err := s.listings.FetchRecruiterApplications(ctx, q, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	apps := make([]dto.ApplicationSummary, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, dto.ApplicationSummary{
			ID:              row.ID,
			Status:          row.Status,
			ApplicationDate: row.ApplicationDate,
			JobID:           row.JobID,
			JobTitle:        row.JobTitle,
			JobStatus:       string(row.JobStatus),
			StudentID:       row.StudentID,
			StudentName:     row.StudentName,
			HasResume:       row.ResumePath != "",
		})
	}

	return &dto.ApplicationListResponse{Applications: apps, Pagination: dto.NewPagination(window)}, nil
}

func (s *ApplicationServiceImpl) ListForStudent(ctx context.Context, actor models.Actor, params query.Params) (*dto.ApplicationListResponse, *apperrors.AppError) {
	filter := query.ParseApplicationFilter(params)
	q := query.CompileStudentApplications(actor.UserID, filter)

	total, err := s.listings.CountStudentApplications(ctx, q)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	window := query.NewPageWindow(total, filter.Page, query.DefaultPageSize)
	rows, err := s.listings.FetchStudentApplications(ctx, q, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	apps := make([]dto.ApplicationSummary, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, dto.ApplicationSummary{
			ID:              row.ID,
			Status:          row.Status,
			ApplicationDate: row.ApplicationDate,
			JobID:           row.JobID,
			JobTitle:        row.JobTitle,
			JobStatus:       string(row.JobStatus),
			CompanyName:     row.CompanyName,
		})
	}

	return &dto.ApplicationListResponse{Applications: apps, Pagination: dto.NewPagination(window)}, nil
}

func (s *ApplicationServiceImpl) ResumePath(ctx context.Context, actor models.Actor, applicationID uint) (string, *apperrors.AppError) {
	app, _, appErr := s.recruiterApplication(ctx, actor, applicationID)
	if appErr != nil {
		return "", appErr
	}

	profile, err := s.profileRepo.FindStudentByUserID(ctx, app.StudentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", apperrors.NewNotFoundError("Resume not found")
		}
		return "", apperrors.StorageError(err)
	}
	if profile.ResumePath == "" {
		return "", apperrors.NewNotFoundError("Resume not found")
	}
	return profile.ResumePath, nil
}

// recruiterApplication loads an application and enforces that the actor
// owns the job it was submitted to.
func (s *ApplicationServiceImpl) recruiterApplication(ctx context.Context, actor models.Actor, applicationID uint) (*models.Application, *models.Job, *apperrors.AppError) {
	app, err := s.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, apperrors.ErrApplicationNotFound
		}
		return nil, nil, apperrors.StorageError(err)
	}

	job, err := s.jobRepo.FindByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, apperrors.ErrApplicationNotFound
		}
		return nil, nil, apperrors.StorageError(err)
	}
	if job.RecruiterID != actor.UserID {
		return nil, nil, apperrors.ErrForbidden
	}
	return app, job, nil
}

// notifyStudent mails the applicant about the status change, off the
// request path.
func (s *ApplicationServiceImpl) notifyStudent(app *models.Application, job *models.Job) {
	go func() {
		ctx := context.Background()

		user, err := s.userRepo.FindByID(ctx, app.StudentID)
		if err != nil {
			logger.WithError(err).Warn("status notification skipped", "application_id", app.ID)
			return
		}
		name := user.Username
		if profile, err := s.profileRepo.FindStudentByUserID(ctx, app.StudentID); err == nil && profile.FullName != "" {
			name = profile.FullName
		}

		body, err := email.RenderApplicationStatus(name, job.Title, string(app.Status))
		if err == nil {
			err = s.mailer.Send(user.Email, "Your application status changed", body)
		}
		if err != nil {
			logger.WithError(err).Warn("status notification failed", "application_id", app.ID)
		}
	}()
}

func toApplicationResponse(app *models.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:              app.ID,
		JobID:           app.JobID,
		StudentID:       app.StudentID,
		CoverLetter:     app.CoverLetter,
		Status:          app.Status,
		ApplicationDate: app.ApplicationDate,
	}
}
