package envvars

import (
	"log"
	"log/slog"

	"github.com/spf13/viper"
)

const (
	Environment   = "ENVIRONMENT"
	Port          = "PORT"
	ProjectID     = "GCP_PROJECT_ID"
	PhotoBucket   = "COURT_PHOTO_BUCKET"
	JWTSecret     = "JWT_SECRET"
	VisionAPIKey  = "VISION_API_KEY"
	OverpassURL   = "OVERPASS_URL"
	SearchRadius  = "COURT_SEARCH_RADIUS_METERS"
	ProductionEnv = "production"
	DevEnv        = "dev"
)

type Env struct {
	Environment  string
	Port         string
	ProjectID    string
	PhotoBucket  string
	JWTSecret    string
	VisionAPIKey string
	OverpassURL  string
	SearchRadius int
}

// GetEnv loads configuration from an optional .env file plus the process
// environment. Missing required values are fatal at startup.
func GetEnv() Env {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		slog.Info("no .env file found, loading from environment variables")
	}
	v.AutomaticEnv()

	v.SetDefault(Environment, DevEnv)
	v.SetDefault(Port, "8080")
	v.SetDefault(PhotoBucket, "pickuphoops-courts")
	v.SetDefault(OverpassURL, "https://overpass-api.de/api/interpreter")
	v.SetDefault(SearchRadius, 5000)

	projectID := v.GetString(ProjectID)
	if projectID == "" {
		log.Fatalf("%s required", ProjectID)
	}
	secret := v.GetString(JWTSecret)
	if secret == "" {
		log.Fatalf("%s required", JWTSecret)
	}
	visionKey := v.GetString(VisionAPIKey)
	if visionKey == "" {
		// Court submissions need photo analysis; surface the gap at startup
		// instead of on the first submission.
		slog.Warn("court photo analysis is disabled", "missing", VisionAPIKey)
	}

	return Env{
		Environment:  v.GetString(Environment),
		Port:         v.GetString(Port),
		ProjectID:    projectID,
		PhotoBucket:  v.GetString(PhotoBucket),
		JWTSecret:    secret,
		VisionAPIKey: visionKey,
		OverpassURL:  v.GetString(OverpassURL),
		SearchRadius: v.GetInt(SearchRadius),
	}
}

func IsProd(env Env) bool {
	return env.Environment == ProductionEnv
}

func IsDev(env Env) bool {
	return env.Environment == DevEnv
}
