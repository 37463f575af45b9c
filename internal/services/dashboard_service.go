package services

import (
	"context"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
)

type DashboardService interface {
	Student(ctx context.Context, actor models.Actor) (*dto.StudentDashboardResponse, *apperrors.AppError)
	Recruiter(ctx context.Context, actor models.Actor) (*dto.RecruiterDashboardResponse, *apperrors.AppError)
}

type DashboardServiceImpl struct {
	jobRepo   repositories.JobRepository
	appRepo   repositories.ApplicationRepository
	savedRepo repositories.SavedJobRepository
}

func NewDashboardService(
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	savedRepo repositories.SavedJobRepository,
) DashboardService {
	return &DashboardServiceImpl{jobRepo: jobRepo, appRepo: appRepo, savedRepo: savedRepo}
}

func (s *DashboardServiceImpl) Student(ctx context.Context, actor models.Actor) (*dto.StudentDashboardResponse, *apperrors.AppError) {
	resp := &dto.StudentDashboardResponse{}
	var err error

	if resp.TotalApplications, err = s.appRepo.CountByStudent(ctx, actor.UserID); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if resp.PendingApplications, err = s.appRepo.CountByStudentAndStatus(ctx, actor.UserID, models.ApplicationStatusPending); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if resp.AcceptedApplications, err = s.appRepo.CountByStudentAndStatus(ctx, actor.UserID, models.ApplicationStatusAccepted); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if resp.RejectedApplications, err = s.appRepo.CountByStudentAndStatus(ctx, actor.UserID, models.ApplicationStatusRejected); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if resp.SavedJobs, err = s.savedRepo.CountByStudent(ctx, actor.UserID); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return resp, nil
}

func (s *DashboardServiceImpl) Recruiter(ctx context.Context, actor models.Actor) (*dto.RecruiterDashboardResponse, *apperrors.AppError) {
	resp := &dto.RecruiterDashboardResponse{}
	var err error

	if resp.TotalJobs, err = s.jobRepo.CountByRecruiter(ctx, actor.UserID); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if resp.OpenJobs, err = s.jobRepo.CountByRecruiterAndStatus(ctx, actor.UserID, models.JobStatusOpen); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if resp.ClosedJobs, err = s.jobRepo.CountByRecruiterAndStatus(ctx, actor.UserID, models.JobStatusClosed); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if resp.TotalApplications, err = s.appRepo.CountByRecruiter(ctx, actor.UserID); err != nil {
		return nil, apperrors.StorageError(err)
	}
	if resp.PendingApplications, err = s.appRepo.CountByRecruiterAndStatus(ctx, actor.UserID, models.ApplicationStatusPending); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return resp, nil
}
