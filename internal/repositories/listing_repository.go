package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
)

// Row types returned by listing queries. These are read models joined
// across tables, not gorm entities.

type JobListItem struct {
	ID          uint
	Title       string
	Location    string
	JobType     models.JobType
	Salary      string
	Status      models.JobStatus
	PostedDate  time.Time
	Deadline    time.Time
	CompanyID   uint
	CompanyName string
	LogoPath    string
}

type CompanyListItem struct {
	ID          uint
	CompanyName string
	Industry    string
	Location    string
	LogoPath    string
	JobCount    int
}

type OwnedJobItem struct {
	ID               uint
	Title            string
	Location         string
	JobType          models.JobType
	Status           models.JobStatus
	PostedDate       time.Time
	Deadline         time.Time
	Views            int
	ApplicationCount int
}

type ApplicationListItem struct {
	ID              uint
	Status          models.ApplicationStatus
	ApplicationDate time.Time
	JobID           uint
	JobTitle        string
	JobStatus       models.JobStatus
	CompanyName     string
	StudentID       uint
	StudentName     string
	ResumePath      string
}

type SavedJobItem struct {
	JobID       uint
	Title       string
	Location    string
	JobType     models.JobType
	Status      models.JobStatus
	Deadline    time.Time
	CompanyName string
	SavedDate   time.Time
}

// ListingRepository runs the compiled listing queries. It works on the
// raw connection rather than through gorm: the WHERE and ORDER BY parts
// arrive pre-built from the query package, and the same predicate feeds
// both the count and the page fetch.
type ListingRepository interface {
	CountJobs(ctx context.Context, q query.Query) (int, error)
	FetchJobs(ctx context.Context, q query.Query, limit, offset int) ([]JobListItem, error)

	CountCompanies(ctx context.Context, q query.Query) (int, error)
	FetchCompanies(ctx context.Context, q query.Query, limit, offset int) ([]CompanyListItem, error)

	CountOwnedJobs(ctx context.Context, q query.Query) (int, error)
	FetchOwnedJobs(ctx context.Context, q query.Query, limit, offset int) ([]OwnedJobItem, error)

	CountRecruiterApplications(ctx context.Context, q query.Query) (int, error)
	FetchRecruiterApplications(ctx context.Context, q query.Query, limit, offset int) ([]ApplicationListItem, error)

	CountStudentApplications(ctx context.Context, q query.Query) (int, error)
	FetchStudentApplications(ctx context.Context, q query.Query, limit, offset int) ([]ApplicationListItem, error)

	CountSavedJobs(ctx context.Context, q query.Query) (int, error)
	FetchSavedJobs(ctx context.Context, q query.Query, limit, offset int) ([]SavedJobItem, error)

	DistinctLocations(ctx context.Context) ([]string, error)
}

type ListingRepositoryImpl struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) ListingRepository {
	return &ListingRepositoryImpl{db: db}
}

const (
	fromJobs = `jobs j
		JOIN company_profiles c ON c.user_id = j.recruiter_id`

	fromCompanies = `company_profiles c`

	fromOwnedJobs = `jobs j`

	fromRecruiterApplications = `applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN student_profiles sp ON sp.user_id = a.student_id`

	fromStudentApplications = `applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN company_profiles c ON c.user_id = j.recruiter_id`

	fromSavedJobs = `saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		JOIN company_profiles c ON c.user_id = j.recruiter_id`
)

func (r *ListingRepositoryImpl) count(ctx context.Context, from string, q query.Query) (int, error) {
	stmt := query.Rebind(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", from, q.Where))
	started := time.Now()
	var total int
	err := r.db.QueryRowContext(ctx, stmt, q.Args...).Scan(&total)
	logger.DBLog("count", stmt, time.Since(started), err)
	if err != nil {
		return 0, fmt.Errorf("count listing: %w", err)
	}
	return total, nil
}

func (r *ListingRepositoryImpl) page(ctx context.Context, cols, from string, q query.Query, limit, offset int) (*sql.Rows, error) {
	stmt := query.Rebind(fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT ? OFFSET ?",
		cols, from, q.Where, q.Order,
	))
	args := append(append([]any{}, q.Args...), limit, offset)
	started := time.Now()
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	logger.DBLog("page", stmt, time.Since(started), err)
	if err != nil {
		return nil, fmt.Errorf("fetch listing page: %w", err)
	}
	return rows, nil
}

func (r *ListingRepositoryImpl) CountJobs(ctx context.Context, q query.Query) (int, error) {
	return r.count(ctx, fromJobs, q)
}

func (r *ListingRepositoryImpl) FetchJobs(ctx context.Context, q query.Query, limit, offset int) ([]JobListItem, error) {
	cols := `j.id, j.title, j.location, j.job_type, j.salary, j.status,
		j.posted_date, j.application_deadline, c.id, c.company_name, c.logo_path`
	rows, err := r.page(ctx, cols, fromJobs, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []JobListItem
	for rows.Next() {
		var it JobListItem
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Location, &it.JobType, &it.Salary, &it.Status,
			&it.PostedDate, &it.Deadline, &it.CompanyID, &it.CompanyName, &it.LogoPath,
		); err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ListingRepositoryImpl) CountCompanies(ctx context.Context, q query.Query) (int, error) {
	return r.count(ctx, fromCompanies, q)
}

func (r *ListingRepositoryImpl) FetchCompanies(ctx context.Context, q query.Query, limit, offset int) ([]CompanyListItem, error) {
	cols := `c.id, c.company_name, c.industry, c.location, c.logo_path,
		(SELECT COUNT(*) FROM jobs j WHERE j.recruiter_id = c.user_id AND j.status = 'open') AS job_count`
	rows, err := r.page(ctx, cols, fromCompanies, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CompanyListItem
	for rows.Next() {
		var it CompanyListItem
		if err := rows.Scan(
			&it.ID, &it.CompanyName, &it.Industry, &it.Location, &it.LogoPath, &it.JobCount,
		); err != nil {
			return nil, fmt.Errorf("scan company row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ListingRepositoryImpl) CountOwnedJobs(ctx context.Context, q query.Query) (int, error) {
	return r.count(ctx, fromOwnedJobs, q)
}

func (r *ListingRepositoryImpl) FetchOwnedJobs(ctx context.Context, q query.Query, limit, offset int) ([]OwnedJobItem, error) {
	cols := `j.id, j.title, j.location, j.job_type, j.status,
		j.posted_date, j.application_deadline, j.views,
		(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS application_count`
	rows, err := r.page(ctx, cols, fromOwnedJobs, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OwnedJobItem
	for rows.Next() {
		var it OwnedJobItem
		if err := rows.Scan(
			&it.ID, &it.Title, &it.Location, &it.JobType, &it.Status,
			&it.PostedDate, &it.Deadline, &it.Views, &it.ApplicationCount,
		); err != nil {
			return nil, fmt.Errorf("scan owned job row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ListingRepositoryImpl) CountRecruiterApplications(ctx context.Context, q query.Query) (int, error) {
	return r.count(ctx, fromRecruiterApplications, q)
}

func (r *ListingRepositoryImpl) FetchRecruiterApplications(ctx context.Context, q query.Query, limit, offset int) ([]ApplicationListItem, error) {
	cols := `a.id, a.status, a.application_date, j.id, j.title, j.status,
		a.student_id, sp.full_name, sp.resume_path`
	rows, err := r.page(ctx, cols, fromRecruiterApplications, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ApplicationListItem
	for rows.Next() {
		var it ApplicationListItem
		if err := rows.Scan(
			&it.ID, &it.Status, &it.ApplicationDate, &it.JobID, &it.JobTitle, &it.JobStatus,
			&it.StudentID, &it.StudentName, &it.ResumePath,
		); err != nil {
			return nil, fmt.Errorf("scan application row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ListingRepositoryImpl) CountStudentApplications(ctx context.Context, q query.Query) (int, error) {
	return r.count(ctx, fromStudentApplications, q)
}

func (r *ListingRepositoryImpl) FetchStudentApplications(ctx context.Context, q query.Query, limit, offset int) ([]ApplicationListItem, error) {
	cols := `a.id, a.status, a.application_date, j.id, j.title, j.status,
		c.company_name, a.student_id`
	rows, err := r.page(ctx, cols, fromStudentApplications, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ApplicationListItem
	for rows.Next() {
		var it ApplicationListItem
		if err := rows.Scan(
			&it.ID, &it.Status, &it.ApplicationDate, &it.JobID, &it.JobTitle, &it.JobStatus,
			&it.CompanyName, &it.StudentID,
		); err != nil {
			return nil, fmt.Errorf("scan application row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ListingRepositoryImpl) CountSavedJobs(ctx context.Context, q query.Query) (int, error) {
	return r.count(ctx, fromSavedJobs, q)
}

func (r *ListingRepositoryImpl) FetchSavedJobs(ctx context.Context, q query.Query, limit, offset int) ([]SavedJobItem, error) {
	cols := `j.id, j.title, j.location, j.job_type, j.status,
		j.application_deadline, c.company_name, s.saved_date`
	rows, err := r.page(ctx, cols, fromSavedJobs, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SavedJobItem
	for rows.Next() {
		var it SavedJobItem
		if err := rows.Scan(
			&it.JobID, &it.Title, &it.Location, &it.JobType, &it.Status,
			&it.Deadline, &it.CompanyName, &it.SavedDate,
		); err != nil {
			return nil, fmt.Errorf("scan saved job row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// DistinctLocations feeds the location filter dropdown from live data.
func (r *ListingRepositoryImpl) DistinctLocations(ctx context.Context) ([]string, error) {
	const stmt = `SELECT DISTINCT location FROM jobs WHERE status = 'open' AND location <> '' ORDER BY location`
	started := time.Now()
	rows, err := r.db.QueryContext(ctx, stmt)
	logger.DBLog("facets", stmt, time.Since(started), err)
	if err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	defer rows.Close()

	var locations []string
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}
