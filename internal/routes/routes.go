package routes

import (
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint. Three surfaces: the public
// board, the student area and the recruiter area. Role checks live
// here, ownership checks live in the services.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, issuer *auth.TokenIssuer) {
	api := router.Group("/api/v1")

	// Public surface. The job detail page carries OptionalAuth so a
	// logged-in student sees has_applied/is_saved.
	h.Auth.RegisterRoutes(api)
	h.Listing.RegisterRoutes(api)

	public := api.Group("")
	public.Use(middleware.OptionalAuth(issuer))
	{
		h.Job.RegisterPublicRoutes(public)
	}

	student := api.Group("/student")
	student.Use(middleware.AuthMiddleware(issuer))
	student.Use(middleware.RequireRoles(models.UserRoleStudent))
	{
		h.Application.RegisterStudentRoutes(student)
		h.SavedJob.RegisterStudentRoutes(student)
		h.Profile.RegisterStudentRoutes(student)
		h.Dashboard.RegisterStudentRoutes(student)
	}

	recruiter := api.Group("/recruiter")
	recruiter.Use(middleware.AuthMiddleware(issuer))
	recruiter.Use(middleware.RequireRoles(models.UserRoleRecruiter))
	{
		h.Job.RegisterRecruiterRoutes(recruiter)
		h.Application.RegisterRecruiterRoutes(recruiter)
		h.Profile.RegisterRecruiterRoutes(recruiter)
		h.Dashboard.RegisterRecruiterRoutes(recruiter)
	}
}
