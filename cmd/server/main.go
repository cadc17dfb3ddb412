package main

import (
	"fmt"
	"log"
	"os"

	"github.com/plantshop/backend/config"
	httpDelivery "github.com/plantshop/backend/internal/delivery/http"
	"github.com/plantshop/backend/internal/infrastructure/cache"
	"github.com/plantshop/backend/internal/infrastructure/catalog"
	"github.com/plantshop/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PlantShop Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog API: %s", cfg.Catalog.BaseURL)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.RequestsPerMinute)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		catalogClient.SetDebug(true)
		log.Printf("Catalog client debug mode enabled")
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		memoryCache,
		catalogClient,
		usecase.CatalogServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
	)
	cartService := usecase.NewCartService()

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, cartService, catalogClient)

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
