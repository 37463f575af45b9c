package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

type CreateJobRequest struct {
	Title            string `json:"title" validate:"required,min=3,max=150"`
	Description      string `json:"description" validate:"required"`
	Requirements     string `json:"requirements" validate:"omitempty,max=5000"`
	Responsibilities string `json:"responsibilities" validate:"omitempty,max=5000"`
	Location         string `json:"location" validate:"required,max=100"`
	JobType          string `json:"job_type" validate:"required,oneof=full-time part-time contract internship remote"`
	ExperienceLevel  string `json:"experience_level" validate:"omitempty,max=50"`
	EducationLevel   string `json:"education_level" validate:"omitempty,max=100"`
	Salary           string `json:"salary" validate:"omitempty,max=50"`
	Skills           string `json:"skills" validate:"omitempty,max=500"`
	Deadline         string `json:"application_deadline" validate:"required,datetime=2006-01-02"`
}

type UpdateJobRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description      *string `json:"description,omitempty"`
	Requirements     *string `json:"requirements,omitempty" validate:"omitempty,max=5000"`
	Responsibilities *string `json:"responsibilities,omitempty" validate:"omitempty,max=5000"`
	Location         *string `json:"location,omitempty" validate:"omitempty,max=100"`
	JobType          *string `json:"job_type,omitempty" validate:"omitempty,oneof=full-time part-time contract internship remote"`
	ExperienceLevel  *string `json:"experience_level,omitempty" validate:"omitempty,max=50"`
	EducationLevel   *string `json:"education_level,omitempty" validate:"omitempty,max=100"`
	Salary           *string `json:"salary,omitempty" validate:"omitempty,max=50"`
	Skills           *string `json:"skills,omitempty" validate:"omitempty,max=500"`
	Deadline         *string `json:"application_deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// JobResponse is the full detail view. HasApplied and IsSaved are only
// populated for student viewers.
type JobResponse struct {
	ID               uint           `json:"id"`
	RecruiterID      uint           `json:"recruiter_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Requirements     string         `json:"requirements,omitempty"`
	Responsibilities string         `json:"responsibilities,omitempty"`
	Location         string         `json:"location"`
	JobType          models.JobType `json:"job_type"`
	ExperienceLevel  string         `json:"experience_level,omitempty"`
	EducationLevel   string         `json:"education_level,omitempty"`
	Salary           string         `json:"salary,omitempty"`
	Skills           []string       `json:"skills"`
	PostedDate       time.Time      `json:"posted_date"`
	Deadline         time.Time      `json:"application_deadline"`
	Status           string         `json:"status"`
	Views            int            `json:"views"`

	CompanyName string `json:"company_name,omitempty"`
	CompanyID   uint   `json:"company_id,omitempty"`

	HasApplied        bool         `json:"has_applied"`
	ApplicationStatus string       `json:"application_status,omitempty"`
	IsSaved           bool         `json:"is_saved"`
	SimilarJobs       []JobSummary `json:"similar_jobs,omitempty"`
}

// ReopenJobResponse reports the outcome of a reopen attempt. A job whose
// application deadline has already passed stays closed; that is a normal
// outcome with a warning, not an error.
type ReopenJobResponse struct {
	Reopened bool         `json:"reopened"`
	Warning  string       `json:"warning,omitempty"`
	Job      *JobResponse `json:"job"`
}

type OwnedJobSummary struct {
	ID               uint           `json:"id"`
	Title            string         `json:"title"`
	Location         string         `json:"location"`
	JobType          models.JobType `json:"job_type"`
	Status           string         `json:"status"`
	PostedDate       time.Time      `json:"posted_date"`
	Deadline         time.Time      `json:"application_deadline"`
	Views            int            `json:"views"`
	ApplicationCount int            `json:"application_count"`
}

type OwnedJobListResponse struct {
	Jobs       []OwnedJobSummary `json:"jobs"`
	Pagination Pagination        `json:"pagination"`
}
