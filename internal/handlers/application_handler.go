package handlers

import (
	"net/http"

	"jobportal_backend/internal/query"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, appService: appService}
}

// RegisterStudentRoutes mounts the applicant-side endpoints; the group
// must be authenticated and student-only.
func (h *ApplicationHandler) RegisterStudentRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/apply", h.Apply)
	rg.GET("/applications", h.ListForStudent)
	rg.DELETE("/applications/:id", h.Withdraw)
}

// RegisterRecruiterRoutes mounts the review-side endpoints; the group
// must be authenticated and recruiter-only.
func (h *ApplicationHandler) RegisterRecruiterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.ListForRecruiter)
	rg.GET("/applications/:id", h.Get)
	rg.PUT("/applications/:id/status", h.UpdateStatus)
	rg.GET("/applications/:id/resume", h.DownloadResume)
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	jobID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.appService.Apply(c.Request.Context(), actor, jobID, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApplicationHandler) ListForStudent(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	params := query.ParamsFromValues(c.Request.URL.Query())

	resp, appErr := h.appService.ListForStudent(c.Request.Context(), actor, params)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if appErr := h.appService.Withdraw(c.Request.Context(), actor, id); appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}

func (h *ApplicationHandler) ListForRecruiter(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	params := query.ParamsFromValues(c.Request.URL.Query())

	resp, appErr := h.appService.ListForRecruiter(c.Request.Context(), actor, params)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, appErr := h.appService.Get(c.Request.Context(), actor, id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.appService.UpdateStatus(c.Request.Context(), actor, id, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	path, appErr := h.appService.ResumePath(c.Request.Context(), actor, id)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.FileAttachment(path, "resume.pdf")
}
