package models

import "time"

type Job struct {
	BaseModel
	RecruiterID     uint      `gorm:"not null;index" json:"recruiter_id"`
	Title           string    `gorm:"size:100;not null" json:"title"`
	Description     string    `gorm:"not null" json:"description"`
	Requirements    string    `json:"requirements"`
	Responsibilities string   `json:"responsibilities"`
	Location        string    `gorm:"size:100" json:"location"`
	JobType         JobType   `gorm:"type:varchar(20);not null" json:"job_type"`
	ExperienceLevel string    `gorm:"size:50" json:"experience_level"`
	EducationLevel  string    `gorm:"size:50" json:"education_level"`
	Salary          string    `gorm:"size:50" json:"salary"`
	Skills          string    `json:"skills"` // comma-delimited tags
	PostedDate      time.Time `gorm:"autoCreateTime" json:"posted_date"`
	Deadline        time.Time `gorm:"column:application_deadline;type:date" json:"application_deadline"`
	Status          JobStatus `gorm:"type:varchar(20);default:'open'" json:"status"`
	Views           int       `gorm:"default:0" json:"views"`

	Recruiter *User `gorm:"foreignKey:RecruiterID;constraint:OnDelete:CASCADE" json:"-"`
}

// Expired reports the derived display state: the job is still open but its
// application deadline has passed. It is computed at read time and never
// written back; only an explicit close/reopen changes Status.
func (j *Job) Expired(now time.Time) bool {
	if j.Status != JobStatusOpen {
		return false
	}
	today := now.UTC().Truncate(24 * time.Hour)
	return j.Deadline.Before(today)
}

// DisplayStatus is what listings show: open, closed or expired.
func (j *Job) DisplayStatus(now time.Time) string {
	if j.Expired(now) {
		return "expired"
	}
	return string(j.Status)
}
