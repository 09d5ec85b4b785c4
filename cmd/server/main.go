package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"vbodnar/lifetrack-app/internal/api"
	"vbodnar/lifetrack-app/internal/config"
	"vbodnar/lifetrack-app/internal/provider/openfoodfacts"
	"vbodnar/lifetrack-app/internal/repository/document"
	"vbodnar/lifetrack-app/internal/service"
	"vbodnar/lifetrack-app/internal/store"
)

func newDocumentStore(cfg config.StorageConfig) (store.DocumentStore, error) {
	switch cfg.Backend {
	case "", "file":
		return store.NewFileStore(cfg.DataDir)
	case "sqlite":
		return store.NewSQLiteStore(cfg.SQLitePath)
	case "s3":
		return store.NewS3Store(store.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			BucketName:      cfg.S3.BucketName,
			Prefix:          cfg.S3.Prefix,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func main() {
	log.Println("Starting Life Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Document Store ---
	docs, err := newDocumentStore(cfg.Storage)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize %s storage: %v", cfg.Storage.Backend, err)
	}
	log.Printf("Document store ready (backend: %s).", cfg.Storage.Backend)

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	foodRepo := document.NewFoodRepository(docs)
	logRepo := document.NewFoodLogRepository(docs)
	dailyFoodRepo := document.NewDailyFoodRepository(docs)
	kettlebellRepo := document.NewKettlebellRepository(docs)
	pushUpRepo := document.NewPushUpRepository(docs)
	dailyWorkoutRepo := document.NewDailyWorkoutRepository(docs)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	foodService := service.NewFoodService(foodRepo, logRepo)
	logService := service.NewLogService(logRepo, foodRepo)
	dailyService := service.NewDailyService(dailyFoodRepo)
	workoutService := service.NewWorkoutService(kettlebellRepo, pushUpRepo, dailyWorkoutRepo)

	// The lookup provider is optional; without it the endpoint reports 503.
	var searcher service.FoodSearcher
	if cfg.Lookup.Enabled {
		searcher = &openfoodfacts.Client{BaseURL: cfg.Lookup.BaseURL}
		log.Println("Food lookup provider enabled.")
	}
	lookupService := service.NewLookupService(searcher)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, foodService, logService, dailyService, workoutService, lookupService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
