package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(issuer *auth.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	secured := router.Group("/secured")
	secured.Use(AuthMiddleware(issuer))
	secured.GET("/me", func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": actor.Role})
	})

	recruiterOnly := router.Group("/recruiter")
	recruiterOnly.Use(AuthMiddleware(issuer))
	recruiterOnly.Use(RequireRoles(models.UserRoleRecruiter))
	recruiterOnly.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	optional := router.Group("/public")
	optional.Use(OptionalAuth(issuer))
	optional.GET("/page", func(c *gin.Context) {
		if actor, ok := GetActor(c); ok {
			c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	})

	return router
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", 60)
	router := newAuthTestRouter(issuer)

	t.Run("missing header rejected", func(t *testing.T) {
		w := doRequest(router, "/secured/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad token rejected", func(t *testing.T) {
		w := doRequest(router, "/secured/me", "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token resolves actor", func(t *testing.T) {
		token, err := issuer.Generate(42, models.UserRoleStudent)
		require.NoError(t, err)

		w := doRequest(router, "/secured/me", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})
}

func TestRequireRoles(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", 60)
	router := newAuthTestRouter(issuer)

	studentToken, err := issuer.Generate(1, models.UserRoleStudent)
	require.NoError(t, err)
	recruiterToken, err := issuer.Generate(2, models.UserRoleRecruiter)
	require.NoError(t, err)

	w := doRequest(router, "/recruiter/ping", studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, "/recruiter/ping", recruiterToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", 60)
	router := newAuthTestRouter(issuer)

	w := doRequest(router, "/public/page", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")

	// A broken token is treated as anonymous, not rejected.
	w = doRequest(router, "/public/page", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")

	token, err := issuer.Generate(42, models.UserRoleStudent)
	require.NoError(t, err)
	w = doRequest(router, "/public/page", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}
