//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"campus-rooms/internal/domain/user"
	"campus-rooms/internal/handler/middleware"
	"campus-rooms/internal/pkg/jwt"
	"campus-rooms/internal/usecase"
	"campus-rooms/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(auth.RequireAuth())
	protected.GET("", func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String(), "role": role.String()})
	})
	protected.GET("/admin", auth.RequireRoleAtLeast(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(t, svc)

	t.Run("valid bearer token passes and exposes the user", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, user.RoleUser)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "user", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := jwt.NewService("test-secret", time.Millisecond)
		token, err := shortLived.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(t, svc)

	t.Run("admin reaches admin routes", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected/admin", nil, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("plain user is forbidden", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected/admin", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}
