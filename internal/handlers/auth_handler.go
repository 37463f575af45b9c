package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.authService.Register(c.Request.Context(), &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, appErr := h.authService.Login(c.Request.Context(), &req)
	if appErr != nil {
		h.HandleServiceError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
