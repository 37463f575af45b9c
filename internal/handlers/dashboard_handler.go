package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterStudentRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Student)
}

func (h *DashboardHandler) RegisterRecruiterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Recruiter)
}

func (h *DashboardHandler) Student(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	resp, appErr := h.dashboardService.Student(c.Request.Context(), actor)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) Recruiter(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	resp, appErr := h.dashboardService.Recruiter(c.Request.Context(), actor)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
