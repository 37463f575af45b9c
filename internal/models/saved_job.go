package models

import "time"

// SavedJob is a student's bookmark for a job. At most one row per
// (job_id, student_id), enforced by a unique index so concurrent toggles
// cannot produce duplicates.
type SavedJob struct {
	BaseModel
	JobID     uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_job_student" json:"job_id"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_job_student" json:"student_id"`
	SavedDate time.Time `gorm:"autoCreateTime" json:"saved_date"`

	Job     *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	Student *User `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}
