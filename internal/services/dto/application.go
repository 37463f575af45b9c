package dto

import (
	"time"

	"jobportal_backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}

type ApplicationSummary struct {
	ID              uint                     `json:"id"`
	Status          models.ApplicationStatus `json:"status"`
	ApplicationDate time.Time                `json:"application_date"`
	JobID           uint                     `json:"job_id"`
	JobTitle        string                   `json:"job_title"`
	JobStatus       string                   `json:"job_status"`
	CompanyName     string                   `json:"company_name,omitempty"`
	StudentID       uint                     `json:"student_id,omitempty"`
	StudentName     string                   `json:"student_name,omitempty"`
	HasResume       bool                     `json:"has_resume,omitempty"`
}

type ApplicationListResponse struct {
	Applications []ApplicationSummary `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}

type ApplicationResponse struct {
	ID              uint                     `json:"id"`
	JobID           uint                     `json:"job_id"`
	StudentID       uint                     `json:"student_id"`
	CoverLetter     string                   `json:"cover_letter,omitempty"`
	Status          models.ApplicationStatus `json:"status"`
	ApplicationDate time.Time                `json:"application_date"`
}

// ApplicantDTO is the applicant's card on the application detail page.
type ApplicantDTO struct {
	StudentID  uint   `json:"student_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Education  string `json:"education,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	HasResume  bool   `json:"has_resume"`
}

// ApplicationDetailResponse is the recruiter's full view of one
// application: the cover letter plus the applicant's profile.
type ApplicationDetailResponse struct {
	ID              uint                     `json:"id"`
	JobID           uint                     `json:"job_id"`
	JobTitle        string                   `json:"job_title"`
	Status          models.ApplicationStatus `json:"status"`
	ApplicationDate time.Time                `json:"application_date"`
	CoverLetter     string                   `json:"cover_letter,omitempty"`
	Applicant       ApplicantDTO             `json:"applicant"`
}

type SavedJobToggleResponse struct {
	Saved bool `json:"saved"`
}

type SavedJobSummary struct {
	JobID       uint           `json:"job_id"`
	Title       string         `json:"title"`
	CompanyName string         `json:"company_name"`
	Location    string         `json:"location"`
	JobType     models.JobType `json:"job_type"`
	Status      string         `json:"status"`
	Deadline    time.Time      `json:"application_deadline"`
	SavedDate   time.Time      `json:"saved_date"`
}

type SavedJobListResponse struct {
	Jobs       []SavedJobSummary `json:"jobs"`
	Pagination Pagination        `json:"pagination"`
}
