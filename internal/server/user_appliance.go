package server

import (
	"github.com/gin-gonic/gin"
	uadomain "github.com/wattwiselabs/wattwise/internal/userappliance/domain"
)

func (s *Server) GetUserAppliances(c *gin.Context) {
	resp, err := s.uasvc.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// UpsertUserAppliances replaces the user's whole appliance list. The
// location only changes when the request carries a non-empty one.
func (s *Server) UpsertUserAppliances(c *gin.Context) {
	var req uadomain.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.uasvc.Upsert(c.Request.Context(), c.Param("userId"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) DeleteUserAppliances(c *gin.Context) {
	resp, err := s.uasvc.Delete(c.Request.Context(), c.Param("userId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}
