package models

import "time"

// Application links one job and one student. The composite unique index
// closes the race between "check if applied" and "insert": a concurrent
// duplicate insert is rejected by the store, not by application logic.
type Application struct {
	BaseModel
	JobID           uint              `gorm:"not null;uniqueIndex:idx_applications_job_student" json:"job_id"`
	StudentID       uint              `gorm:"not null;uniqueIndex:idx_applications_job_student" json:"student_id"`
	CoverLetter     string            `json:"cover_letter"`
	ApplicationDate time.Time         `gorm:"autoCreateTime" json:"application_date"`
	Status          ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Job     *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
	Student *User `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}
