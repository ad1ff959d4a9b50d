package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findmyicp/reddit-assistant/internal/activitylog"
	"github.com/findmyicp/reddit-assistant/internal/api"
	"github.com/findmyicp/reddit-assistant/internal/apify"
	"github.com/findmyicp/reddit-assistant/internal/assistant"
	"github.com/findmyicp/reddit-assistant/internal/catalog"
	"github.com/findmyicp/reddit-assistant/internal/config"
	"github.com/findmyicp/reddit-assistant/internal/gemini"
	"github.com/findmyicp/reddit-assistant/internal/notifications"
	"github.com/findmyicp/reddit-assistant/internal/scheduler"
	"github.com/findmyicp/reddit-assistant/internal/storage"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting Reddit marketing assistant")

	// Initialize storage
	backend, err := newStorageBackend(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize the subreddit working set
	subreddits := catalog.NewStore(catalog.DefaultSubreddits, backend)
	if err := subreddits.Load(); err != nil {
		logrus.Fatalf("Failed to load subreddit working set: %v", err)
	}

	// Initialize the generation and search backends
	generator, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		logrus.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	if !generator.IsEnabled() {
		logrus.Warn("GEMINI_API_KEY not set, generation endpoints will fail")
	}

	searcher := apify.NewClient(cfg.ApifyToken, cfg.ApifyActor)
	if !searcher.IsEnabled() {
		logrus.Warn("APIFY_API_KEY not set, search endpoints will fail")
	}

	// Initialize the activity log and the assistant service
	activity := activitylog.NewStore(backend)
	brand := catalog.DefaultBrand
	service := assistant.NewService(cfg, &brand, subreddits, generator, searcher, activity)

	// Initialize notifications and the scheduler
	notificationService := notifications.NewService(cfg)
	schedulerService := scheduler.NewService(cfg, service, notificationService)

	// Start scheduler
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	// Set up the HTTP API
	router := mux.NewRouter()
	api.NewServer(service).Register(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

func newStorageBackend(cfg *config.Config) (storage.Interface, error) {
	if cfg.StorageBackend == "azure" {
		return storage.NewAzureStorage(cfg.StorageAccount, cfg.StorageContainer)
	}
	return storage.NewLocalStorage(cfg.DataDir)
}
