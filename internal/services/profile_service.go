package services

import (
	"context"
	"encoding/json"
	"errors"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"

	"gorm.io/datatypes"
)

type ProfileService interface {
	GetStudent(ctx context.Context, actor models.Actor) (*dto.StudentProfileResponse, *apperrors.AppError)
	UpdateStudent(ctx context.Context, actor models.Actor, req *dto.UpdateStudentProfileRequest) (*dto.StudentProfileResponse, *apperrors.AppError)

	GetCompany(ctx context.Context, actor models.Actor) (*dto.CompanyProfileResponse, *apperrors.AppError)
	UpdateCompany(ctx context.Context, actor models.Actor, req *dto.UpdateCompanyProfileRequest) (*dto.CompanyProfileResponse, *apperrors.AppError)

	// CompanyDetail is the public company page: profile plus open jobs.
	CompanyDetail(ctx context.Context, companyID uint) (*dto.CompanyDetailResponse, *apperrors.AppError)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	listings    repositories.ListingRepository
	clock       Clock
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	listings repositories.ListingRepository,
	clock Clock,
) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, listings: listings, clock: clock}
}

func (s *ProfileServiceImpl) GetStudent(ctx context.Context, actor models.Actor) (*dto.StudentProfileResponse, *apperrors.AppError) {
	profile, err := s.profileRepo.FindStudentByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	return toStudentProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateStudent(ctx context.Context, actor models.Actor, req *dto.UpdateStudentProfileRequest) (*dto.StudentProfileResponse, *apperrors.AppError) {
	profile, err := s.profileRepo.FindStudentByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	profile.FullName = req.FullName
	profile.Phone = req.Phone
	profile.Address = req.Address
	profile.Education = req.Education
	profile.Skills = req.Skills
	profile.Experience = req.Experience
	profile.ResumePath = req.ResumePath
	profile.ProfilePic = req.ProfilePic

	if err := s.profileRepo.SaveStudent(ctx, profile); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return toStudentProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) GetCompany(ctx context.Context, actor models.Actor) (*dto.CompanyProfileResponse, *apperrors.AppError) {
	profile, err := s.profileRepo.FindCompanyByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.StorageError(err)
	}
	return toCompanyProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateCompany(ctx context.Context, actor models.Actor, req *dto.UpdateCompanyProfileRequest) (*dto.CompanyProfileResponse, *apperrors.AppError) {
	profile, err := s.profileRepo.FindCompanyByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	profile.CompanyName = req.CompanyName
	profile.Description = req.Description
	profile.Industry = req.Industry
	profile.Location = req.Location
	profile.Website = req.Website
	profile.LogoPath = req.LogoPath
	profile.FoundedYear = req.FoundedYear
	profile.CompanySize = req.CompanySize

	if req.SocialLinks != nil {
		raw, err := json.Marshal(req.SocialLinks)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid social links")
		}
		profile.SocialLinks = datatypes.JSON(raw)
	}

	if err := s.profileRepo.SaveCompany(ctx, profile); err != nil {
		return nil, apperrors.StorageError(err)
	}
	return toCompanyProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) CompanyDetail(ctx context.Context, companyID uint) (*dto.CompanyDetailResponse, *apperrors.AppError) {
	profile, err := s.profileRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.StorageError(err)
	}

	// The company's open jobs are the recruiter's owned jobs pinned to
	// status = open.
	q := query.CompileOwnedJobs(profile.UserID, query.OwnedJobFilter{Status: models.JobStatusOpen})

	total, lerr := s.listings.CountOwnedJobs(ctx, q)
	if lerr != nil {
		return nil, apperrors.StorageError(lerr)
	}
	window := query.NewPageWindow(total, 1, query.DefaultPageSize)
	rows, lerr := s.listings.FetchOwnedJobs(ctx, q, window.PageSize, window.Offset)
	if lerr != nil {
		return nil, apperrors.StorageError(lerr)
	}

	now := s.clock.Now()
	jobs := make([]dto.JobSummary, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, dto.JobSummary{
			ID:          row.ID,
			Title:       row.Title,
			CompanyID:   profile.ID,
			CompanyName: profile.CompanyName,
			Location:    row.Location,
			JobType:     row.JobType,
			PostedDate:  row.PostedDate,
			Deadline:    row.Deadline,
			Status:      displayStatus(row.Status, row.Deadline, now),
		})
	}

	return &dto.CompanyDetailResponse{
		Company:  *toCompanyProfileResponse(profile),
		OpenJobs: jobs,
	}, nil
}

func toStudentProfileResponse(p *models.StudentProfile) *dto.StudentProfileResponse {
	return &dto.StudentProfileResponse{
		UserID:     p.UserID,
		FullName:   p.FullName,
		Phone:      p.Phone,
		Address:    p.Address,
		Education:  p.Education,
		Skills:     p.Skills,
		Experience: p.Experience,
		ResumePath: p.ResumePath,
		ProfilePic: p.ProfilePic,
	}
}

func toCompanyProfileResponse(p *models.CompanyProfile) *dto.CompanyProfileResponse {
	resp := &dto.CompanyProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		CompanyName: p.CompanyName,
		Description: p.Description,
		Industry:    p.Industry,
		Location:    p.Location,
		Website:     p.Website,
		LogoPath:    p.LogoPath,
		FoundedYear: p.FoundedYear,
		CompanySize: p.CompanySize,
	}
	if len(p.SocialLinks) > 0 {
		var links map[string]string
		if err := json.Unmarshal(p.SocialLinks, &links); err == nil {
			resp.SocialLinks = links
		}
	}
	return resp
}
