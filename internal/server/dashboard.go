package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	dashdomain "github.com/wattwiselabs/wattwise/internal/dashboard/domain"
)

// GetDashboardTotals aggregates every forecast, optionally bounded by the
// from/to query parameters (RFC 3339 or YYYY-MM-DD).
func (s *Server) GetDashboardTotals(c *gin.Context) {
	req := dashdomain.TotalsRequest{}

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		AbortWithError(c, newValidationError("from", "invalid_time", "from must be RFC3339 or YYYY-MM-DD"))
		return
	}
	req.From = from

	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		AbortWithError(c, newValidationError("to", "invalid_time", "to must be RFC3339 or YYYY-MM-DD"))
		return
	}
	req.To = to

	totals, err := s.dashsvc.GetTotals(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, totals)
}

func (s *Server) GetRegionalBreakdown(c *gin.Context) {
	regions, err := s.dashsvc.GetRegionalBreakdown(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, regions)
}

func parseTimeParam(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
