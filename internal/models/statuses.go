package models

import "fmt"

type UserRole string
type JobStatus string
type JobType string
type ApplicationStatus string

const (
	UserRoleStudent   UserRole = "student"
	UserRoleRecruiter UserRole = "recruiter"

	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ParseUserRole validates a raw role string. Roles are fixed at
// registration and never change afterwards.
func ParseUserRole(raw string) (UserRole, error) {
	switch UserRole(raw) {
	case UserRoleStudent, UserRoleRecruiter:
		return UserRole(raw), nil
	default:
		return "", fmt.Errorf("invalid user role %q", raw)
	}
}

func ParseJobStatus(raw string) (JobStatus, error) {
	switch JobStatus(raw) {
	case JobStatusOpen, JobStatusClosed:
		return JobStatus(raw), nil
	default:
		return "", fmt.Errorf("invalid job status %q", raw)
	}
}

func ParseJobType(raw string) (JobType, error) {
	switch JobType(raw) {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return JobType(raw), nil
	default:
		return "", fmt.Errorf("invalid job type %q", raw)
	}
}

func ParseApplicationStatus(raw string) (ApplicationStatus, error) {
	switch ApplicationStatus(raw) {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return ApplicationStatus(raw), nil
	default:
		return "", fmt.Errorf("invalid application status %q", raw)
	}
}
