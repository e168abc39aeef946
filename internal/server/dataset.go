package server

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	monthlydomain "github.com/wattwiselabs/wattwise/internal/monthlydata/domain"
	tariffdomain "github.com/wattwiselabs/wattwise/internal/tariff/domain"
)

// tariffUploadRow is the wire shape of one tariff block. kwh_to may arrive
// as a number, a numeric string, "inf", an empty string or null; everything
// non-numeric means the block is open-ended.
type tariffUploadRow struct {
	Scheme          string          `json:"scheme"`
	Block           string          `json:"block"`
	KwhFrom         float64         `json:"kwh_from"`
	KwhTo           json.RawMessage `json:"kwh_to"`
	EnergyLkrPerKwh float64         `json:"energy_lkr_per_kwh"`
	FixedLkr        float64         `json:"fixed_lkr"`
}

func (r tariffUploadRow) toUploadRow() tariffdomain.UploadRow {
	return tariffdomain.UploadRow{
		Scheme:          r.Scheme,
		Block:           r.Block,
		KwhFrom:         r.KwhFrom,
		KwhTo:           sanitizeKwhTo(r.KwhTo),
		EnergyLkrPerKwh: r.EnergyLkrPerKwh,
		FixedLkr:        r.FixedLkr,
	}
}

func sanitizeKwhTo(raw json.RawMessage) *float64 {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	trimmed = strings.Trim(trimmed, `"`)
	if trimmed == "" || strings.EqualFold(trimmed, "inf") || strings.EqualFold(trimmed, "infinity") {
		return nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (s *Server) UploadTariffs(c *gin.Context) {
	wireRows, err := bindOneOrMany[tariffUploadRow](c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rows := make([]tariffdomain.UploadRow, 0, len(wireRows))
	for _, row := range wireRows {
		rows = append(rows, row.toUploadRow())
	}

	n, err := s.tariffsvc.UploadBlocks(c.Request.Context(), rows)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, gin.H{"inserted": n})
}

func (s *Server) ListTariffs(c *gin.Context) {
	tariffs, err := s.tariffsvc.List(c.Request.Context(), strings.TrimSpace(c.Query("scheme")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, tariffs)
}

func (s *Server) UploadMonthlyData(c *gin.Context) {
	rows, err := bindOneOrMany[monthlydomain.UploadRow](c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	n, err := s.monthlysvc.BulkUpsert(c.Request.Context(), rows)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, gin.H{"upserted": n})
}

func (s *Server) ListMonthlyData(c *gin.Context) {
	rows, err := s.monthlysvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, rows)
}
