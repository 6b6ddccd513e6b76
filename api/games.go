package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pickuphoops/services/game"
)

// ListGames (GET /games) returns every game, most recent first. An empty
// store is a 200 with an empty list, never an error.
func (s Server) ListGames(c *gin.Context) {
	games, err := s.GameService.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if games == nil {
		games = []game.Game{}
	}
	c.JSON(http.StatusOK, games)
}

// GetGame (GET /games/:id)
func (s Server) GetGame(c *gin.Context) {
	g, err := s.GameService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// CreateGame (POST /games)
func (s Server) CreateGame(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	g, err := s.GameService.Create(c.Request.Context(), id.UserID, game.CreateInput{
		Court:      req.Court.snapshot(),
		Time:       req.Time,
		MaxPlayers: req.MaxPlayers,
		SkillLevel: req.SkillLevel,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// ClaimSlot (POST /games/:id/signups) reserves one open roster slot for the
// caller and responds with the refreshed game.
func (s Server) ClaimSlot(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req ClaimSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	g, err := s.GameService.ClaimSlot(c.Request.Context(), c.Param("id"), *req.Slot, id.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}
