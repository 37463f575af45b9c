package handlers

import (
	"net/http"

	"jobportal_backend/internal/query"
	"jobportal_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	*BaseHandler
	savedService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{BaseHandler: base, savedService: savedService}
}

// RegisterStudentRoutes mounts the bookmark endpoints; the group must
// be authenticated and student-only.
func (h *SavedJobHandler) RegisterStudentRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/save", h.Toggle)
	rg.GET("/saved-jobs", h.List)
}

func (h *SavedJobHandler) Toggle(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	jobID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	resp, appErr := h.savedService.Toggle(c.Request.Context(), actor, jobID)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SavedJobHandler) List(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	params := query.ParamsFromValues(c.Request.URL.Query())

	resp, appErr := h.savedService.List(c.Request.Context(), actor, params)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
