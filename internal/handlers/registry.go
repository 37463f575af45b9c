package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Listing     *ListingHandler
	Job         *JobHandler
	Application *ApplicationHandler
	SavedJob    *SavedJobHandler
	Profile     *ProfileHandler
	Dashboard   *DashboardHandler
}
