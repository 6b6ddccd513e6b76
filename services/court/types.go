package court

import (
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"
)

// Court is a basketball-playable location sourced live from the geodata
// service. Courts are recomputed on every lookup and never persisted.
type Court struct {
	ID        int64             `json:"id"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Name      string            `json:"name,omitempty"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// SubmittedCourt is a user-contributed court, stored once its photo passes
// classification.
type SubmittedCourt struct {
	ID           string         `json:"id" firestore:"id"`
	Name         string         `json:"name" firestore:"name"`
	Description  string         `json:"description,omitempty" firestore:"description"`
	Location     *latlng.LatLng `json:"location" firestore:"location"`
	PhotoURL     string         `json:"photoUrl" firestore:"photoUrl"`
	Labels       []PhotoLabel   `json:"labels" firestore:"labels"`
	DetectedText string         `json:"detectedText,omitempty" firestore:"detectedText"`
	CreatorID    string         `json:"creatorId" firestore:"creatorId"`
	CreatedAt    time.Time      `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// PhotoLabel is one classification label kept as evidence for the submission.
type PhotoLabel struct {
	Description string  `json:"description" firestore:"description"`
	Score       float64 `json:"score" firestore:"score"`
}

type SubmitInput struct {
	Name        string
	Description string
	PhotoBase64 string
	Latitude    float64
	Longitude   float64
}
