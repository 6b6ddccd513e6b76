package game

import "time"

// CourtSnapshot is the court as it looked when the game was created. Games
// keep their own copy because located courts are never persisted.
type CourtSnapshot struct {
	ID        int64   `json:"id" firestore:"id"`
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
	Name      string  `json:"name,omitempty" firestore:"name"`
}

// Signup is one claimed slot in a game's roster.
type Signup struct {
	UserID      string `json:"userId" firestore:"userId"`
	DisplayName string `json:"displayName" firestore:"displayName"`
}

// Game is a scheduled pickup session at a court. Signups always holds exactly
// MaxPlayers entries; a nil entry is an open slot.
type Game struct {
	ID         string        `json:"id" firestore:"id"`
	HostID     string        `json:"hostId" firestore:"hostId"`
	Court      CourtSnapshot `json:"court" firestore:"court"`
	Time       string        `json:"time" firestore:"time"`
	MaxPlayers int           `json:"maxPlayers" firestore:"maxPlayers"`
	SkillLevel string        `json:"skillLevel" firestore:"skillLevel"`
	CreatedAt  time.Time     `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	Signups    []*Signup     `json:"signups" firestore:"signups"`
}

type CreateInput struct {
	Court      CourtSnapshot
	Time       string
	MaxPlayers int
	SkillLevel string
}
