package server

import (
	"github.com/gin-gonic/gin"
)

type computeTariffRequest struct {
	Scheme         string   `json:"scheme"`
	ConsumptionKwh *float64 `json:"consumption_kwh"`
}

// ComputeTariff prices a consumption figure against the stored tariff table.
func (s *Server) ComputeTariff(c *gin.Context) {
	var req computeTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}
	if req.ConsumptionKwh == nil {
		AbortWithError(c, newValidationError("consumption_kwh", "required", "consumption_kwh is required"))
		return
	}

	computation, err := s.tariffsvc.ComputeFromStored(c.Request.Context(), req.Scheme, *req.ConsumptionKwh)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, computation)
}
