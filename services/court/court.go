package court

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/genproto/googleapis/type/latlng"

	"pickuphoops/clients/gcp"
	"pickuphoops/clients/overpass"
	"pickuphoops/clients/vision"
)

var (
	InvalidInput  = errors.New("invalid court submission")
	PhotoRejected = errors.New("photo does not look like a park or court")
)

const (
	maxStoredLabels  = 10
	maxDetectedText  = 1500
	courtCollection  = "courts"
	photoContentType = "image/jpeg"
)

type Service interface {
	// Locate returns the basketball courts within radiusMeters of the given
	// position. Every call is a full replace; nothing is cached.
	Locate(ctx context.Context, lat, lon float64, radiusMeters int) ([]Court, error)

	// Submit validates a user-contributed court photo, uploads it, and
	// persists the court record. Nothing is stored when the photo is rejected.
	Submit(ctx context.Context, userID string, input SubmitInput) (*SubmittedCourt, error)
}

type service struct {
	db            *firestore.Client
	overpass      *overpass.Client
	vision        *vision.Client
	photoBucket   string
	defaultRadius int
}

var _ Service = (*service)(nil)

func NewService(db *firestore.Client, overpassClient *overpass.Client, visionClient *vision.Client, photoBucket string, defaultRadius int) Service {
	return &service{
		db:            db,
		overpass:      overpassClient,
		vision:        visionClient,
		photoBucket:   photoBucket,
		defaultRadius: defaultRadius,
	}
}

func (s *service) Locate(ctx context.Context, lat, lon float64, radiusMeters int) ([]Court, error) {
	if radiusMeters <= 0 {
		radiusMeters = s.defaultRadius
	}
	elements, err := s.overpass.QueryBasketballCourts(ctx, lat, lon, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to query courts: %w", err)
	}
	return normalizeElements(elements), nil
}

// normalizeElements flattens the three Overpass geometry shapes into plain
// points: a node's own coordinate wins, then the element's center; elements
// with neither are dropped.
func normalizeElements(elements []overpass.Element) []Court {
	courts := make([]Court, 0, len(elements))
	for _, el := range elements {
		var lat, lon float64
		switch {
		case el.Type == "node" && el.Lat != nil && el.Lon != nil:
			lat, lon = *el.Lat, *el.Lon
		case el.Center != nil:
			lat, lon = el.Center.Lat, el.Center.Lon
		default:
			continue
		}
		courts = append(courts, Court{
			ID:        el.ID,
			Latitude:  lat,
			Longitude: lon,
			Name:      el.Tags["name"],
			Tags:      el.Tags,
		})
	}
	return courts
}

func (s *service) Submit(ctx context.Context, userID string, input SubmitInput) (*SubmittedCourt, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", InvalidInput)
	}
	if input.PhotoBase64 == "" {
		return nil, fmt.Errorf("%w: photo is required", InvalidInput)
	}
	photo, err := base64.StdEncoding.DecodeString(input.PhotoBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: photo is not valid base64", InvalidInput)
	}

	analysis, err := s.vision.AnnotateImage(ctx, input.PhotoBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze photo: %w", err)
	}
	if !analysis.LooksLikeCourt() {
		log.Info().Str("userId", userID).Str("name", input.Name).Msg("court submission rejected by photo analysis")
		return nil, PhotoRejected
	}

	ref := s.db.Collection(courtCollection).NewDoc()
	objectName := ref.ID + ".jpg"

	photoURL, err := gcp.UploadObject(ctx, s.photoBucket, objectName, photoContentType, photo)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	submitted := SubmittedCourt{
		ID:          ref.ID,
		Name:        input.Name,
		Description: input.Description,
		Location: &latlng.LatLng{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		PhotoURL:     photoURL,
		Labels:       keepLabels(analysis.Labels),
		DetectedText: capText(analysis.FullText),
		CreatorID:    userID,
	}
	if _, err := ref.Set(ctx, submitted); err != nil {
		// Don't leave the photo behind when the record itself was never saved.
		if delErr := gcp.DeleteObject(ctx, s.photoBucket, objectName); delErr != nil {
			log.Warn().Err(delErr).Str("courtId", ref.ID).Msg("failed to remove photo of unsaved court")
		}
		return nil, fmt.Errorf("failed to save court: %w", err)
	}

	doc, err := ref.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := doc.DataTo(&submitted); err != nil {
		return nil, err
	}
	return &submitted, nil
}

func keepLabels(labels []vision.Label) []PhotoLabel {
	kept := make([]PhotoLabel, 0, maxStoredLabels)
	for _, l := range labels {
		if len(kept) == maxStoredLabels {
			break
		}
		kept = append(kept, PhotoLabel{Description: l.Description, Score: l.Score})
	}
	return kept
}

// capText caps the stored signage text at maxDetectedText characters. The cut
// is made on a rune boundary; Firestore rejects strings that are not valid UTF-8.
func capText(text string) string {
	runes := []rune(text)
	if len(runes) > maxDetectedText {
		return string(runes[:maxDetectedText])
	}
	return text
}
