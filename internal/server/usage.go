package server

import (
	"github.com/gin-gonic/gin"
	usagedomain "github.com/wattwiselabs/wattwise/internal/usage/domain"
)

func (s *Server) LogUsage(c *gin.Context) {
	var req usagedomain.LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	record, err := s.usagesvc.Log(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, record)
}

func (s *Server) ListUsage(c *gin.Context) {
	records, err := s.usagesvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, records)
}

func (s *Server) ListUsageByUser(c *gin.Context) {
	records, err := s.usagesvc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, records)
}

func (s *Server) SubmitSurvey(c *gin.Context) {
	var req usagedomain.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	survey, err := s.usagesvc.SubmitSurvey(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, survey)
}

func (s *Server) ListSurveysByUser(c *gin.Context) {
	surveys, err := s.usagesvc.ListSurveysByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, surveys)
}
