package envvars

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Run("all env vars set", func(t *testing.T) {
		t.Setenv(ProjectID, "test-project")
		t.Setenv(JWTSecret, "test-secret")
		t.Setenv(Environment, "production")
		t.Setenv(Port, "9090")
		t.Setenv(VisionAPIKey, "test-vision-key")
		t.Setenv(OverpassURL, "http://localhost:1234/api/interpreter")

		got := GetEnv()
		if got.ProjectID != "test-project" {
			t.Errorf("ProjectID = %q, want %q", got.ProjectID, "test-project")
		}
		if got.JWTSecret != "test-secret" {
			t.Errorf("JWTSecret = %q, want %q", got.JWTSecret, "test-secret")
		}
		if got.Environment != ProductionEnv {
			t.Errorf("Environment = %q, want %q", got.Environment, ProductionEnv)
		}
		if got.Port != "9090" {
			t.Errorf("Port = %q, want %q", got.Port, "9090")
		}
		if got.OverpassURL != "http://localhost:1234/api/interpreter" {
			t.Errorf("OverpassURL = %q", got.OverpassURL)
		}
	})

	t.Run("missing vision key warns at startup", func(t *testing.T) {
		t.Setenv(ProjectID, "test-project")
		t.Setenv(JWTSecret, "test-secret")
		t.Setenv(VisionAPIKey, "")

		var buf bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
		defer slog.SetDefault(prev)

		got := GetEnv()
		if got.VisionAPIKey != "" {
			t.Fatalf("VisionAPIKey = %q, want empty", got.VisionAPIKey)
		}
		if !strings.Contains(buf.String(), VisionAPIKey) {
			t.Errorf("expected startup warning naming %s, got %q", VisionAPIKey, buf.String())
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(ProjectID, "test-project")
		t.Setenv(JWTSecret, "test-secret")

		got := GetEnv()
		if got.Environment != DevEnv {
			t.Errorf("expected environment to default to dev, got %s", got.Environment)
		}
		if got.Port != "8080" {
			t.Errorf("expected port to default to 8080, got %s", got.Port)
		}
		if got.SearchRadius != 5000 {
			t.Errorf("expected search radius to default to 5000, got %d", got.SearchRadius)
		}
	})
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, true},
		{"dev env", Env{Environment: DevEnv}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProd(tt.env); got != tt.want {
				t.Errorf("IsProd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, false},
		{"dev env", Env{Environment: DevEnv}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDev(tt.env); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}
