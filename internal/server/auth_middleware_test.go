package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	jwtsvc "github.com/wattwiselabs/wattwise/internal/auth/jwt"
	"go.uber.org/zap"
)

func TestAdminGate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokenSvc, err := jwtsvc.NewService(jwtsvc.Config{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Duration:  time.Hour,
	})
	require.NoError(t, err)

	srv := &Server{
		log:    zap.NewNop(),
		jwtsvc: tokenSvc,
	}

	router := gin.New()
	router.GET("/protected", srv.AuthRequired(), srv.RequireRole("admin"), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	t.Run("no token -> unauthorized", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("garbage token -> unauthorized", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, do("Bearer not-a-token").Code)
	})

	t.Run("user role -> forbidden, not pass-through", func(t *testing.T) {
		token, err := tokenSvc.GenerateToken("42", "user")
		require.NoError(t, err)

		resp := do("Bearer " + token)
		require.Equal(t, http.StatusForbidden, resp.Code)
		require.Contains(t, resp.Body.String(), "forbidden")
	})

	t.Run("admin role -> allowed", func(t *testing.T) {
		token, err := tokenSvc.GenerateToken("42", "admin")
		require.NoError(t, err)

		resp := do("Bearer " + token)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Equal(t, "ok", resp.Body.String())
	})
}
