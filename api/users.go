package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pickuphoops/services/user"
)

// GetMe (GET /users/me)
func (s Server) GetMe(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	u, err := s.UserService.GetUser(c.Request.Context(), id.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMe (PATCH /users/me) applies the provided profile fields to the
// caller's own profile. Only the owner can reach their document here.
func (s Server) UpdateMe(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	u, err := s.UserService.UpdateProfile(c.Request.Context(), id.UserID, user.ProfileUpdate{
		DisplayName:   req.DisplayName,
		PhotoURL:      req.PhotoURL,
		Age:           req.Age,
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		Gender:        req.Gender,
		FavoriteSport: req.FavoriteSport,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
