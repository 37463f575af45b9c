package handlers

import (
	"errors"
	"strconv"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj any) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, appErr *apperrors.AppError) {
	logger.CtxWarn(c.Request.Context(), "Service error",
		"code", string(appErr.Code),
		"message", appErr.Message,
		"path", c.Request.URL.Path,
	)
	apperrors.HandleError(c, appErr)
}

// Actor pulls the authenticated identity set by the auth middleware.
func (h *BaseHandler) Actor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return models.Actor{}, false
	}
	return actor, true
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *gin.Context, key string) (uint, bool) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid path parameter: "+key))
		return 0, false
	}
	return uint(id), true
}
