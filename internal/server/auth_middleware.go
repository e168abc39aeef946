package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	contextUserIDKey = "user_id"
	contextRoleKey   = "role"
)

// AuthRequired authenticates requests with a bearer token. The role claim
// rides in the token, so no store lookup happens here.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, err := s.jwtsvc.ValidateToken(parts[1])
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Set(contextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route on the authenticated role claim. A valid token
// with the wrong role is denied, never passed through.
func (s *Server) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(contextRoleKey)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if got != role {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}
