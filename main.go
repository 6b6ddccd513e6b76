package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"

	"pickuphoops/api"
	"pickuphoops/clients/gcp"
	"pickuphoops/clients/overpass"
	"pickuphoops/clients/vision"
	"pickuphoops/envvars"
	"pickuphoops/services/auth"
	"pickuphoops/services/court"
	"pickuphoops/services/game"
	"pickuphoops/services/user"
)

func main() {
	env := envvars.GetEnv()

	firestore := gcp.CreateFirestore(context.Background(), env.ProjectID)
	defer firestore.Close()

	httpClient := resty.New()
	overpassClient := overpass.NewClient(httpClient, env.OverpassURL)
	visionClient := vision.NewClient(httpClient, env.VisionAPIKey)

	userService := user.NewService(firestore)
	authService := auth.NewService(userService, env.JWTSecret)
	gameService := game.NewService(firestore, userService)
	courtService := court.NewService(firestore, overpassClient, visionClient, env.PhotoBucket, env.SearchRadius)

	server := api.NewServer(authService, userService, gameService, courtService)

	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())
	api.RegisterHandlers(r, server, env.JWTSecret)

	s := &http.Server{
		Handler: r,
		Addr:    "0.0.0.0:" + env.Port,
	}

	slog.Info("Starting HTTP server", "port", env.Port, "environment", env.Environment)
	log.Fatal(s.ListenAndServe())
}
