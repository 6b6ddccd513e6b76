package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register (POST /auth/register)
func (s Server) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	u, token, err := s.AuthService.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: u})
}

// Login (POST /auth/login)
func (s Server) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	u, token, err := s.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: u})
}
