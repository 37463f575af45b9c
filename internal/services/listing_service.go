package services

import (
	"context"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
)

// ListingService serves the public board: the filtered job listing, the
// company directory and the filter facets. All queries go through the
// query compiler; raw request values never reach SQL text.
type ListingService interface {
	ListJobs(ctx context.Context, params query.Params) (*dto.JobListResponse, *apperrors.AppError)
	ListCompanies(ctx context.Context, params query.Params) (*dto.CompanyListResponse, *apperrors.AppError)
	Facets(ctx context.Context) (*dto.JobFacetsResponse, *apperrors.AppError)
}

type ListingServiceImpl struct {
	listings repositories.ListingRepository
	clock    Clock
}

func NewListingService(listings repositories.ListingRepository, clock Clock) ListingService {
	return &ListingServiceImpl{listings: listings, clock: clock}
}

func (s *ListingServiceImpl) ListJobs(ctx context.Context, params query.Params) (*dto.JobListResponse, *apperrors.AppError) {
	filter := query.ParseJobFilter(params)
	q := query.CompileJobListing(filter)

	total, err := s.listings.CountJobs(ctx, q)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	window := query.NewPageWindow(total, filter.Page, query.DefaultPageSize)
	rows, err := s.listings.FetchJobs(ctx, q, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	now := s.clock.Now()
	jobs := make([]dto.JobSummary, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, dto.JobSummary{
			ID:          row.ID,
			Title:       row.Title,
			CompanyID:   row.CompanyID,
			CompanyName: row.CompanyName,
			LogoPath:    row.LogoPath,
			Location:    row.Location,
			JobType:     row.JobType,
			Salary:      row.Salary,
			PostedDate:  row.PostedDate,
			Deadline:    row.Deadline,
			Status:      displayStatus(row.Status, row.Deadline, now),
		})
	}

	return &dto.JobListResponse{Jobs: jobs, Pagination: dto.NewPagination(window)}, nil
}

func (s *ListingServiceImpl) ListCompanies(ctx context.Context, params query.Params) (*dto.CompanyListResponse, *apperrors.AppError) {
	filter := query.ParseCompanyFilter(params)
	q := query.CompileCompanyListing(filter)

	total, err := s.listings.CountCompanies(ctx, q)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	window := query.NewPageWindow(total, filter.Page, query.DefaultPageSize)
	rows, err := s.listings.FetchCompanies(ctx, q, window.PageSize, window.Offset)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	companies := make([]dto.CompanySummary, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, dto.CompanySummary{
			ID:          row.ID,
			CompanyName: row.CompanyName,
			Industry:    row.Industry,
			Location:    row.Location,
			LogoPath:    row.LogoPath,
			JobCount:    row.JobCount,
		})
	}

	return &dto.CompanyListResponse{Companies: companies, Pagination: dto.NewPagination(window)}, nil
}

func (s *ListingServiceImpl) Facets(ctx context.Context) (*dto.JobFacetsResponse, *apperrors.AppError) {
	locations, err := s.listings.DistinctLocations(ctx)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.JobFacetsResponse{
		Locations: locations,
		JobTypes: []string{
			string(models.JobTypeFullTime),
			string(models.JobTypePartTime),
			string(models.JobTypeContract),
			string(models.JobTypeInternship),
			string(models.JobTypeRemote),
		},
		Sorts: []string{
			string(query.SortNewest),
			string(query.SortOldest),
			string(query.SortTitleAsc),
			string(query.SortTitleDesc),
		},
	}, nil
}
