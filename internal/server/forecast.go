package server

import (
	"github.com/gin-gonic/gin"
	forecastdomain "github.com/wattwiselabs/wattwise/internal/forecast/domain"
)

func (s *Server) AddForecast(c *gin.Context) {
	var req forecastdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.forecastsvc.Add(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp)
}

func (s *Server) ListForecasts(c *gin.Context) {
	forecasts, err := s.forecastsvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, forecasts)
}

func (s *Server) ListForecastsByUser(c *gin.Context) {
	forecasts, err := s.forecastsvc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, forecasts)
}
