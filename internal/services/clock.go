package services

import (
	"time"

	"jobportal_backend/internal/models"
)

// Clock abstracts "now" so deadline-sensitive behavior is testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// displayStatus derives the effective status: an open job whose deadline
// passed reads as expired without any stored state changing.
func displayStatus(status models.JobStatus, deadline time.Time, now time.Time) string {
	if status == models.JobStatusOpen && deadline.Before(today(now)) {
		return "expired"
	}
	return string(status)
}

func today(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}
