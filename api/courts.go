package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pickuphoops/services/court"
)

// LocateCourts (GET /courts?lat=..&lon=..&radius=..) returns the basketball
// courts currently known to the geodata service around the given position.
func (s Server) LocateCourts(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat must be a number"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lon must be a number"})
		return
	}
	radius := 0
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.Atoi(raw)
		if err != nil || radius <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "radius must be a positive integer"})
			return
		}
	}

	courts, err := s.CourtService.Locate(c.Request.Context(), lat, lon, radius)
	if err != nil {
		// The geodata service is down or unhappy; the caller can retry.
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch courts"})
		return
	}
	c.JSON(http.StatusOK, courts)
}

// SubmitCourt (POST /courts) stores a user-contributed court once its photo
// passes classification.
func (s Server) SubmitCourt(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req SubmitCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	submitted, err := s.CourtService.Submit(c.Request.Context(), id.UserID, court.SubmitInput{
		Name:        req.Name,
		Description: req.Description,
		PhotoBase64: req.PhotoBase64,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		if errors.Is(err, court.InvalidInput) || errors.Is(err, court.PhotoRejected) {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to process court submission"})
		return
	}
	c.JSON(http.StatusCreated, submitted)
}
