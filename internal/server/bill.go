package server

import (
	"github.com/gin-gonic/gin"
	billdomain "github.com/wattwiselabs/wattwise/internal/bill/domain"
)

func (s *Server) AddBill(c *gin.Context) {
	var req billdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	bill, err := s.billsvc.Add(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, bill)
}

func (s *Server) ListBills(c *gin.Context) {
	bills, err := s.billsvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, bills)
}

func (s *Server) ListBillsByUser(c *gin.Context) {
	bills, err := s.billsvc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, bills)
}
