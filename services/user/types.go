package user

import "time"

type User struct {
	ID            string    `json:"id" firestore:"id"`
	Email         string    `json:"email" firestore:"email"`
	DisplayName   string    `json:"displayName" firestore:"displayName"`
	PasswordHash  string    `json:"-" firestore:"passwordHash"`
	PhotoURL      string    `json:"photoURL,omitempty" firestore:"photoURL"`
	Age           *int      `json:"age,omitempty" firestore:"age"`
	HeightCM      *float64  `json:"heightCm,omitempty" firestore:"heightCm"`
	WeightKG      *float64  `json:"weightKg,omitempty" firestore:"weightKg"`
	Gender        string    `json:"gender,omitempty" firestore:"gender"`
	FavoriteSport string    `json:"favoriteSport,omitempty" firestore:"favoriteSport"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

// ProfileUpdate carries the owner-editable profile fields. Nil fields are
// left untouched on the stored document.
type ProfileUpdate struct {
	DisplayName   *string  `structs:"displayName,omitempty"`
	PhotoURL      *string  `structs:"photoURL,omitempty"`
	Age           *int     `structs:"age,omitempty"`
	HeightCM      *float64 `structs:"heightCm,omitempty"`
	WeightKG      *float64 `structs:"weightKg,omitempty"`
	Gender        *string  `structs:"gender,omitempty"`
	FavoriteSport *string  `structs:"favoriteSport,omitempty"`
}
