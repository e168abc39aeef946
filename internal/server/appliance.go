package server

import (
	"github.com/gin-gonic/gin"
	appliancedomain "github.com/wattwiselabs/wattwise/internal/appliance/domain"
)

// UploadAppliances bulk-upserts catalog rows. A single object and an array
// of objects are both accepted.
func (s *Server) UploadAppliances(c *gin.Context) {
	rows, err := bindOneOrMany[appliancedomain.UploadRow](c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	n, err := s.appliancesvc.BulkUpsert(c.Request.Context(), rows)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, gin.H{"upserted": n})
}

func (s *Server) ListAppliances(c *gin.Context) {
	appliances, err := s.appliancesvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, appliances)
}
