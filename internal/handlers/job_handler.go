package handlers

import (
	"net/http"

	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/query"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// RegisterPublicRoutes mounts the detail page; the group should carry
// OptionalAuth so student viewers get has_applied/is_saved.
func (h *JobHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/:id", h.Get)
}

// RegisterRecruiterRoutes mounts the manage endpoints; the group must
// be authenticated and recruiter-only.
func (h *JobHandler) RegisterRecruiterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListOwned)
		jobs.POST("", h.Create)
		jobs.PUT("/:id", h.Update)
		jobs.POST("/:id/close", h.Close)
		jobs.POST("/:id/reopen", h.Reopen)
		jobs.DELETE("/:id", h.Delete)
	}
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var viewer *models.Actor
	if actor, ok := middleware.GetActor(c); ok {
		viewer = &actor
	}

	resp, appErr := h.jobService.Get(c.Request.Context(), viewer, id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) ListOwned(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	params := query.ParamsFromValues(c.Request.URL.Query())

	resp, appErr := h.jobService.ListOwned(c.Request.Context(), actor, params)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Create(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.jobService.Create(c.Request.Context(), actor, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) Update(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.jobService.Update(c.Request.Context(), actor, id, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Close(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, appErr := h.jobService.Close(c.Request.Context(), actor, id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Reopen(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, appErr := h.jobService.Reopen(c.Request.Context(), actor, id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) Delete(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if appErr := h.jobService.Delete(c.Request.Context(), actor, id); appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
