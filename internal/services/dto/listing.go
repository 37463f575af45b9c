package dto

import (
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
)

// Pagination is the page envelope every listing response carries.
// Links is the sliding window of page numbers for the pager UI.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Links      []int `json:"links"`
}

func NewPagination(w query.PageWindow) Pagination {
	return Pagination{
		Page:       w.Page,
		PageSize:   w.PageSize,
		Total:      w.Total,
		TotalPages: w.TotalPages,
		Links:      w.Links(),
	}
}

type JobSummary struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	CompanyID   uint           `json:"company_id"`
	CompanyName string         `json:"company_name"`
	LogoPath    string         `json:"logo_path,omitempty"`
	Location    string         `json:"location"`
	JobType     models.JobType `json:"job_type"`
	Salary      string         `json:"salary,omitempty"`
	PostedDate  time.Time      `json:"posted_date"`
	Deadline    time.Time      `json:"application_deadline"`
	Status      string         `json:"status"`
}

type JobListResponse struct {
	Jobs       []JobSummary `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}

type CompanySummary struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry,omitempty"`
	Location    string `json:"location,omitempty"`
	LogoPath    string `json:"logo_path,omitempty"`
	JobCount    int    `json:"job_count"`
}

type CompanyListResponse struct {
	Companies  []CompanySummary `json:"companies"`
	Pagination Pagination       `json:"pagination"`
}

// JobFacetsResponse backs the filter controls on the board.
type JobFacetsResponse struct {
	Locations []string `json:"locations"`
	JobTypes  []string `json:"job_types"`
	Sorts     []string `json:"sorts"`
}
