package server

import (
	"github.com/gin-gonic/gin"
	recdomain "github.com/wattwiselabs/wattwise/internal/recommendation/domain"
)

func (s *Server) UpsertRecommendation(c *gin.Context) {
	var req recdomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	rec, err := s.recsvc.Upsert(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, rec)
}

// GetRecommendation returns the newest recommendation for a user, or a null
// body when none exists yet.
func (s *Server) GetRecommendation(c *gin.Context) {
	rec, err := s.recsvc.GetLatestByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, rec)
}
