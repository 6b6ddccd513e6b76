package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pickuphoops/services/auth"
	"pickuphoops/services/court"
	"pickuphoops/services/game"
	"pickuphoops/services/user"
	"pickuphoops/validator"
)

type Server struct {
	AuthService  auth.Service
	UserService  user.Service
	GameService  game.Service
	CourtService court.Service
}

func NewServer(authService auth.Service, userService user.Service, gameService game.Service, courtService court.Service) Server {
	return Server{
		AuthService:  authService,
		UserService:  userService,
		GameService:  gameService,
		CourtService: courtService,
	}
}

func RegisterHandlers(r *gin.Engine, s Server, jwtSecret string) {
	r.GET("/ping", s.GetPing)
	r.POST("/auth/register", s.Register)
	r.POST("/auth/login", s.Login)
	r.GET("/courts", s.LocateCourts)
	r.GET("/games", s.ListGames)
	r.GET("/games/:id", s.GetGame)

	authed := r.Group("/", validator.Middleware(jwtSecret))
	authed.POST("/courts", s.SubmitCourt)
	authed.POST("/games", s.CreateGame)
	authed.POST("/games/:id/signups", s.ClaimSlot)
	authed.GET("/users/me", s.GetMe)
	authed.PATCH("/users/me", s.UpdateMe)
}

// GetPing (GET /ping)
func (Server) GetPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ping": "pong"})
}

// writeServiceError maps service sentinels onto HTTP statuses. Everything
// unrecognized is a 500 with a generic message.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.NotFound) || errors.Is(err, user.NotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, game.AlreadySignedUp) || errors.Is(err, game.SlotTaken) || errors.Is(err, auth.EmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, game.InvalidSlot) || errors.Is(err, game.InvalidInput) ||
		errors.Is(err, court.InvalidInput) || errors.Is(err, court.PhotoRejected):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.InvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "something went wrong"})
	}
}

func identity(c *gin.Context) (*validator.Identity, bool) {
	id, ok := validator.FromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing session"})
		return nil, false
	}
	return id, true
}
