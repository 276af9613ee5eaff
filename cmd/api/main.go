package main

import (
	"log"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/middleware"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/api/routes"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/config"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/config/db"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	store, err := storage.New(storage.Config{
		Type:      config.StorageType,
		BasePath:  config.UploadRoot,
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		Bucket:    config.MinioBucket,
		UseSSL:    config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB, store)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
