package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProxyPredictUsage forwards the request body to the forecasting service
// and relays its response verbatim.
func (s *Server) ProxyPredictUsage(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.predictor.PredictUsage(c.Request.Context(), payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", resp)
}

// ProxyRecommendBudget forwards the request body to the budget service.
func (s *Server) ProxyRecommendBudget(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.predictor.RecommendBudget(c.Request.Context(), payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", resp)
}
