package middleware

import (
	"strings"

	"jobportal_backend/internal/apperrors"
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeyUserID = "userID"
	ctxKeyRole   = "role"
)

// AuthMiddleware validates the Bearer token and stores the resolved
// actor identity in the request context.
func AuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			abortWith(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyRole, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid token is present and
// lets anonymous requests through untouched. Bad tokens are treated as
// anonymous, not rejected.
func OptionalAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := issuer.Parse(tokenStr); err == nil {
				c.Set(ctxKeyUserID, claims.UserID)
				c.Set(ctxKeyRole, claims.Role)
				ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// RequireRoles rejects requests whose actor role is not in the given set.
// Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok || !roleSet[actor.Role] {
			abortWith(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetActor extracts the authenticated actor from the gin context.
// Returns false when the request did not pass AuthMiddleware.
func GetActor(c *gin.Context) (models.Actor, bool) {
	idVal, exists := c.Get(ctxKeyUserID)
	if !exists {
		return models.Actor{}, false
	}
	id, ok := idVal.(uint)
	if !ok {
		return models.Actor{}, false
	}

	roleVal, exists := c.Get(ctxKeyRole)
	if !exists {
		return models.Actor{}, false
	}
	role, ok := roleVal.(models.UserRole)
	if !ok {
		roleStr, isString := roleVal.(string)
		if !isString {
			return models.Actor{}, false
		}
		role = models.UserRole(roleStr)
	}

	return models.Actor{UserID: id, Role: role}, true
}

func abortWith(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}
