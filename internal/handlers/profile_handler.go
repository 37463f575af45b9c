package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterStudentRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetStudent)
	rg.PUT("/profile", h.UpdateStudent)
}

func (h *ProfileHandler) RegisterRecruiterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetCompany)
	rg.PUT("/profile", h.UpdateCompany)
}

func (h *ProfileHandler) GetStudent(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	resp, appErr := h.profileService.GetStudent(c.Request.Context(), actor)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateStudent(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var req dto.UpdateStudentProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.profileService.UpdateStudent(c.Request.Context(), actor, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetCompany(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}

	resp, appErr := h.profileService.GetCompany(c.Request.Context(), actor)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateCompany(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.profileService.UpdateCompany(c.Request.Context(), actor, &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
