package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
)

const similarJobsLimit = 4

type JobService interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateJobRequest) (*dto.JobResponse, *apperrors.AppError)
	Update(ctx context.Context, actor models.Actor, id uint, req *dto.UpdateJobRequest) (*dto.JobResponse, *apperrors.AppError)
	Close(ctx context.Context, actor models.Actor, id uint) (*dto.JobResponse, *apperrors.AppError)
	// Reopen never fails on a passed deadline; the response carries a
	// Reopened flag and a warning instead.
	Reopen(ctx context.Context, actor models.Actor, id uint) (*dto.ReopenJobResponse, *apperrors.AppError)
	Delete(ctx context.Context, actor models.Actor, id uint) *apperrors.AppError

	// Get serves the public detail page. viewer is nil for anonymous
	// requests; student viewers additionally get has_applied/is_saved.
	Get(ctx context.Context, viewer *models.Actor, id uint) (*dto.JobResponse, *apperrors.AppError)

	ListOwned(ctx context.Context, actor models.Actor, params query.Params) (*dto.OwnedJobListResponse, *apperrors.AppError)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
	appRepo     repositories.ApplicationRepository
	savedRepo   repositories.SavedJobRepository
	listings    repositories.ListingRepository
	clock       Clock
}

func NewJobService(
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	appRepo repositories.ApplicationRepository,
	savedRepo repositories.SavedJobRepository,
	listings repositories.ListingRepository,
	clock Clock,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		appRepo:     appRepo,
		savedRepo:   savedRepo,
		listings:    listings,
		clock:       clock,
	}
}

func (s *JobServiceImpl) Create(ctx context.Context, actor models.Actor, req *dto.CreateJobRequest) (*dto.JobResponse, *apperrors.AppError) {
	jobType, err := models.ParseJobType(req.JobType)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid job type")
	}
	deadline, appErr := s.parseDeadline(req.Deadline)
	if appErr != nil {
		return nil, appErr
	}

	// Postings show the company name, so an empty profile cannot publish.
	company, err := s.profileRepo.FindCompanyByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewBadRequestError("Complete your company profile before posting jobs")
		}
		return nil, apperrors.StorageError(err)
	}
	if company.CompanyName == "" {
		return nil, apperrors.NewBadRequestError("Complete your company profile before posting jobs")
	}

	job := &models.Job{
		RecruiterID:      actor.UserID,
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Location:         req.Location,
		JobType:          jobType,
		ExperienceLevel:  req.ExperienceLevel,
		EducationLevel:   req.EducationLevel,
		Salary:           req.Salary,
		Skills:           req.Skills,
		Deadline:         deadline,
		Status:           models.JobStatusOpen,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.StorageError(err)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "recruiter_id", actor.UserID)
	return s.toResponse(ctx, job, nil), nil
}

func (s *JobServiceImpl) Update(ctx context.Context, actor models.Actor, id uint, req *dto.UpdateJobRequest) (*dto.JobResponse, *apperrors.AppError) {
	job, appErr := s.ownedJob(ctx, actor, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = *req.Responsibilities
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		jobType, err := models.ParseJobType(*req.JobType)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid job type")
		}
		job.JobType = jobType
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.EducationLevel != nil {
		job.EducationLevel = *req.EducationLevel
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.Deadline != nil {
		deadline, appErr := s.parseDeadline(*req.Deadline)
		if appErr != nil {
			return nil, appErr
		}
		job.Deadline = deadline
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return s.toResponse(ctx, job, nil), nil
}

func (s *JobServiceImpl) Close(ctx context.Context, actor models.Actor, id uint) (*dto.JobResponse, *apperrors.AppError) {
	job, appErr := s.ownedJob(ctx, actor, id)
	if appErr != nil {
		return nil, appErr
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrInvalidState
	}

	if err := s.jobRepo.Close(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidState
		}
		return nil, apperrors.StorageError(err)
	}

	job.Status = models.JobStatusClosed
	logger.CtxInfo(ctx, "job closed", "job_id", id)
	return s.toResponse(ctx, job, nil), nil
}

func (s *JobServiceImpl) Reopen(ctx context.Context, actor models.Actor, id uint) (*dto.ReopenJobResponse, *apperrors.AppError) {
	job, appErr := s.ownedJob(ctx, actor, id)
	if appErr != nil {
		return nil, appErr
	}
	if job.Status != models.JobStatusClosed {
		return nil, apperrors.ErrInvalidState
	}

	rows, err := s.jobRepo.Reopen(ctx, id, today(s.clock.Now()))
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	if rows == 0 {
		// The deadline guard in the UPDATE rejected the transition.
		// The job stays closed and the caller gets a warning, not an
		// error.
		logger.CtxWarn(ctx, "reopen skipped, deadline passed", "job_id", id)
		return &dto.ReopenJobResponse{
			Reopened: false,
			Warning:  "Cannot reopen a job whose application deadline has passed",
			Job:      s.toResponse(ctx, job, nil),
		}, nil
	}

	job.Status = models.JobStatusOpen
	logger.CtxInfo(ctx, "job reopened", "job_id", id)
	return &dto.ReopenJobResponse{Reopened: true, Job: s.toResponse(ctx, job, nil)}, nil
}

func (s *JobServiceImpl) Delete(ctx context.Context, actor models.Actor, id uint) *apperrors.AppError {
	if _, appErr := s.ownedJob(ctx, actor, id); appErr != nil {
		return appErr
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.StorageError(err)
	}
	logger.CtxInfo(ctx, "job deleted", "job_id", id)
	return nil
}

func (s *JobServiceImpl) Get(ctx context.Context, viewer *models.Actor, id uint) (*dto.JobResponse, *apperrors.AppError) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	// Views are best effort; a miss never fails the read.
	if err := s.jobRepo.IncrementViews(ctx, id); err != nil {
		logger.CtxWarn(ctx, "view increment failed", "job_id", id, "error", err)
	} else {
		job.Views++
	}

	resp := s.toResponse(ctx, job, viewer)
	s.attachSimilar(ctx, job, resp)
	return resp, nil
}

func (s *JobServiceImpl) ListOwned(ctx context.Context, actor models.Actor, params query.Params) (*dto.OwnedJobListResponse, *apperrors.AppError) {
	filter := query.ParseOwnedJobFilter(params)
	q := query.CompileOwnedJobs(actor.UserID, filter)

	total, err := s.listings.CountOwnedJobs(ctx, q)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	window := query.NewPageWindow(total, filter.Page, query.DefaultPageSize)
	rows, err := s.listings.FetchOwnedJobs(ctx, q, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	now := s.clock.Now()
	jobs := make([]dto.OwnedJobSummary, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, dto.OwnedJobSummary{
			ID:               row.ID,
			Title:            row.Title,
			Location:         row.Location,
			JobType:          row.JobType,
			Status:           displayStatus(row.Status, row.Deadline, now),
			PostedDate:       row.PostedDate,
			Deadline:         row.Deadline,
			Views:            row.Views,
			ApplicationCount: row.ApplicationCount,
		})
	}

	return &dto.OwnedJobListResponse{Jobs: jobs, Pagination: dto.NewPagination(window)}, nil
}

// ownedJob loads a job and enforces recruiter ownership.
func (s *JobServiceImpl) ownedJob(ctx context.Context, actor models.Actor, id uint) (*models.Job, *apperrors.AppError) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	if job.RecruiterID != actor.UserID {
		return nil, apperrors.ErrForbidden
	}
	return job, nil
}

func (s *JobServiceImpl) parseDeadline(raw string) (time.Time, *apperrors.AppError) {
	deadline, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("Invalid application deadline")
	}
	if deadline.Before(today(s.clock.Now())) {
		return time.Time{}, apperrors.NewBadRequestError("Application deadline must not be in the past")
	}
	return deadline, nil
}

func (s *JobServiceImpl) toResponse(ctx context.Context, job *models.Job, viewer *models.Actor) *dto.JobResponse {
	now := s.clock.Now()
	resp := &dto.JobResponse{
		ID:               job.ID,
		RecruiterID:      job.RecruiterID,
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		Location:         job.Location,
		JobType:          job.JobType,
		ExperienceLevel:  job.ExperienceLevel,
		EducationLevel:   job.EducationLevel,
		Salary:           job.Salary,
		Skills:           splitSkills(job.Skills),
		PostedDate:       job.PostedDate,
		Deadline:         job.Deadline,
		Status:           job.DisplayStatus(now),
		Views:            job.Views,
	}

	if company, err := s.profileRepo.FindCompanyByUserID(ctx, job.RecruiterID); err == nil {
		resp.CompanyName = company.CompanyName
		resp.CompanyID = company.ID
	}

	if viewer != nil && viewer.IsStudent() {
		if app, err := s.appRepo.FindByJobAndStudent(ctx, job.ID, viewer.UserID); err == nil {
			resp.HasApplied = true
			resp.ApplicationStatus = string(app.Status)
		}
		if saved, err := s.savedRepo.Exists(ctx, job.ID, viewer.UserID); err == nil {
			resp.IsSaved = saved
		}
	}

	return resp
}

// attachSimilar enriches the detail page with other open jobs sharing
// the type or location.
func (s *JobServiceImpl) attachSimilar(ctx context.Context, job *models.Job, resp *dto.JobResponse) {
	similar, err := s.jobRepo.FindSimilar(ctx, job, similarJobsLimit)
	if err != nil {
		logger.CtxWarn(ctx, "similar jobs lookup failed", "job_id", job.ID, "error", err)
		return
	}
	now := s.clock.Now()
	for _, sj := range similar {
		resp.SimilarJobs = append(resp.SimilarJobs, dto.JobSummary{
			ID:         sj.ID,
			Title:      sj.Title,
			Location:   sj.Location,
			JobType:    sj.JobType,
			Salary:     sj.Salary,
			PostedDate: sj.PostedDate,
			Deadline:   sj.Deadline,
			Status:     sj.DisplayStatus(now),
		})
	}
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
