package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pricepersize/backend/config"
	httpDelivery "github.com/pricepersize/backend/internal/delivery/http"
	"github.com/pricepersize/backend/internal/domain"
	"github.com/pricepersize/backend/internal/infrastructure/cache"
	"github.com/pricepersize/backend/internal/infrastructure/gemini"
	"github.com/pricepersize/backend/internal/infrastructure/postgres"
	"github.com/pricepersize/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PricePerSize Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Core engine services - pure, stateless computation
	comparisonService := usecase.NewComparisonService(usecase.ComparisonConfig{})
	shelfTagService := usecase.NewShelfTagService(0)

	// Receipt extraction client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model)
	if cfg.Server.Environment == "development" {
		geminiClient.SetDebug(true)
		log.Printf("Gemini client debug mode enabled")
	}
	log.Printf("Gemini API configured: %s (model: %s)", cfg.Gemini.BaseURL, cfg.Gemini.Model)

	memoryCache := cache.NewMemoryCache()
	log.Printf("Pending scan TTL: %s", cfg.Cache.PendingTTL)

	// Pantry store is optional: without a database URL, comparison,
	// shelf-check and receipt scanning still work; confirmation and
	// pantry endpoints answer 503.
	var pantryRepo domain.PantryRepository
	var pantryService *usecase.PantryService
	if cfg.Database.URL != "" {
		pool, err := postgres.Connect(context.Background(), cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		log.Printf("Connected to hosted postgres")

		repo := postgres.NewPantryRepository(pool)
		pantryRepo = repo
		pantryService = usecase.NewPantryService(repo)
	} else {
		log.Printf("WARNING: no database URL configured - scan works, confirmation and pantry endpoints disabled")
	}

	receiptService := usecase.NewReceiptService(geminiClient, pantryRepo, memoryCache, usecase.ReceiptServiceConfig{
		PendingTTL: cfg.Cache.PendingTTL,
	})

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(
		comparisonService,
		shelfTagService,
		receiptService,
		pantryService,
		httpDelivery.HandlerConfig{
			MaxUploadBytes:    int64(cfg.Upload.MaxSizeMB) << 20,
			AllowedImageTypes: cfg.Upload.AllowedTypes,
		},
	)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
