package server

import (
	"github.com/gin-gonic/gin"
	userdomain "github.com/wattwiselabs/wattwise/internal/user/domain"
)

func (s *Server) Register(c *gin.Context) {
	var req userdomain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.usersvc.Register(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp)
}

func (s *Server) Login(c *gin.Context) {
	var req userdomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.usersvc.Login(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.usersvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, users)
}

func (s *Server) GetUser(c *gin.Context) {
	user, err := s.usersvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, user)
}
