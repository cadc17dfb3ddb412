package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogClient defines the interface for the upstream plant catalog API.
// All responses are untyped; the normalizer is the typed boundary.
type CatalogClient interface {
	ListPlants(ctx context.Context) (interface{}, error)
	ListCategories(ctx context.Context) (interface{}, error)
	ListPlantsByCategory(ctx context.Context, categoryID string) (interface{}, error)
	GetPlantDetail(ctx context.Context, plantID string) (interface{}, error)
}
