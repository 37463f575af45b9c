package services

import (
	"context"
	"errors"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
)

type SavedJobService interface {
	// Toggle flips the bookmark: saved becomes unsaved and vice versa.
	// The response reports the resulting state.
	Toggle(ctx context.Context, actor models.Actor, jobID uint) (*dto.SavedJobToggleResponse, *apperrors.AppError)
	List(ctx context.Context, actor models.Actor, params query.Params) (*dto.SavedJobListResponse, *apperrors.AppError)
}

type SavedJobServiceImpl struct {
	savedRepo repositories.SavedJobRepository
	jobRepo   repositories.JobRepository
	listings  repositories.ListingRepository
	clock     Clock
}

func NewSavedJobService(
	savedRepo repositories.SavedJobRepository,
	jobRepo repositories.JobRepository,
	listings repositories.ListingRepository,
	clock Clock,
) SavedJobService {
	return &SavedJobServiceImpl{
		savedRepo: savedRepo,
		jobRepo:   jobRepo,
		listings:  listings,
		clock:     clock,
	}
}

func (s *SavedJobServiceImpl) Toggle(ctx context.Context, actor models.Actor, jobID uint) (*dto.SavedJobToggleResponse, *apperrors.AppError) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	saved, err := s.savedRepo.Exists(ctx, jobID, actor.UserID)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	if saved {
		if _, err := s.savedRepo.Delete(ctx, jobID, actor.UserID); err != nil {
			return nil, apperrors.StorageError(err)
		}
		logger.CtxInfo(ctx, "job unsaved", "job_id", jobID, "student_id", actor.UserID)
		return &dto.SavedJobToggleResponse{Saved: false}, nil
	}

	err = s.savedRepo.Create(ctx, &models.SavedJob{JobID: jobID, StudentID: actor.UserID})
	if err != nil && !errors.Is(err, repositories.ErrDuplicate) {
		return nil, apperrors.StorageError(err)
	}
	// A duplicate means a concurrent save won; the job is saved either way.
	logger.CtxInfo(ctx, "job saved", "job_id", jobID, "student_id", actor.UserID)
	return &dto.SavedJobToggleResponse{Saved: true}, nil
}

func (s *SavedJobServiceImpl) List(ctx context.Context, actor models.Actor, params query.Params) (*dto.SavedJobListResponse, *apperrors.AppError) {
	filter := query.ParseSavedJobFilter(params)
	q := query.CompileSavedJobs(actor.UserID)

	total, err := s.listings.CountSavedJobs(ctx, q)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	window := query.NewPageWindow(total, filter.Page, query.DefaultPageSize)
	rows, err := s.listings.FetchSavedJobs(ctx, q, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	now := s.clock.Now()
	jobs := make([]dto.SavedJobSummary, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, dto.SavedJobSummary{
			JobID:       row.JobID,
			Title:       row.Title,
			CompanyName: row.CompanyName,
			Location:    row.Location,
			JobType:     row.JobType,
			Status:      displayStatus(row.Status, row.Deadline, now),
			Deadline:    row.Deadline,
			SavedDate:   row.SavedDate,
		})
	}

	return &dto.SavedJobListResponse{Jobs: jobs, Pagination: dto.NewPagination(window)}, nil
}
