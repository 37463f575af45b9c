package dto

type StudentDashboardResponse struct {
	TotalApplications    int64 `json:"total_applications"`
	PendingApplications  int64 `json:"pending_applications"`
	AcceptedApplications int64 `json:"accepted_applications"`
	RejectedApplications int64 `json:"rejected_applications"`
	SavedJobs            int64 `json:"saved_jobs"`
}

type RecruiterDashboardResponse struct {
	TotalJobs           int64 `json:"total_jobs"`
	OpenJobs            int64 `json:"open_jobs"`
	ClosedJobs          int64 `json:"closed_jobs"`
	TotalApplications   int64 `json:"total_applications"`
	PendingApplications int64 `json:"pending_applications"`
}
