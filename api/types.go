package api

import (
	"pickuphoops/services/game"
	"pickuphoops/services/user"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

type CreateGameRequest struct {
	Court      CourtRef `json:"court" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	MaxPlayers int      `json:"maxPlayers" binding:"required,min=1"`
	SkillLevel string   `json:"skillLevel" binding:"required"`
}

// CourtRef identifies the map marker the creator tapped.
type CourtRef struct {
	ID        int64   `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

func (c CourtRef) snapshot() game.CourtSnapshot {
	return game.CourtSnapshot{
		ID:        c.ID,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Name:      c.Name,
	}
}

type ClaimSlotRequest struct {
	Slot *int `json:"slot" binding:"required"`
}

type SubmitCourtRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	PhotoBase64 string  `json:"photoBase64" binding:"required"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
}

type UpdateProfileRequest struct {
	DisplayName   *string  `json:"displayName"`
	PhotoURL      *string  `json:"photoURL"`
	Age           *int     `json:"age"`
	HeightCM      *float64 `json:"heightCm"`
	WeightKG      *float64 `json:"weightKg"`
	Gender        *string  `json:"gender"`
	FavoriteSport *string  `json:"favoriteSport"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
