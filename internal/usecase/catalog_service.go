package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/plantshop/backend/internal/domain"
	"github.com/plantshop/backend/internal/infrastructure/catalog"
)

const (
	categoriesCacheKey  = "catalog:categories"
	plantsCacheKeyFmt   = "catalog:plants:%s"
	allPlantsCategoryID = "all"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

// CatalogService orchestrates the upstream catalog: fetch, normalize,
// cache, and track the active category selection so that a late response
// from a superseded selection never overwrites a newer one.
type CatalogService struct {
	cache    domain.CacheRepository
	client   domain.CatalogClient
	cacheTTL time.Duration

	mu             sync.Mutex
	activeCategory string
	summaries      map[string]*domain.Plant
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(
	cache domain.CacheRepository,
	client domain.CatalogClient,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	return &CatalogService{
		cache:          cache,
		client:         client,
		cacheTTL:       cacheTTL,
		activeCategory: allPlantsCategoryID,
		summaries:      make(map[string]*domain.Plant),
	}
}

// Categories returns the normalized category list.
// Flow: check cache -> fetch upstream -> extract -> normalize -> cache -> return
func (s *CatalogService) Categories(ctx context.Context) ([]*domain.Category, error) {
	if cached, err := s.cache.Get(ctx, categoriesCacheKey); err == nil {
		if categories, ok := cached.([]*domain.Category); ok {
			return categories, nil
		}
	}

	resp, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	var categories []*domain.Category
	for _, raw := range catalog.ExtractList(resp) {
		if c := catalog.NormalizeCategory(raw); c != nil {
			categories = append(categories, c)
		}
	}

	if err := s.cache.Set(ctx, categoriesCacheKey, categories, s.cacheTTL); err != nil {
		log.Printf("[CATALOG] Failed to cache categories: %v", err)
	}

	return categories, nil
}

// Plants returns the normalized plants for a category. An empty or "all"
// id loads the whole catalog.
func (s *CatalogService) Plants(ctx context.Context, categoryID string) ([]*domain.Plant, error) {
	if categoryID == "" {
		categoryID = allPlantsCategoryID
	}

	cacheKey := fmt.Sprintf(plantsCacheKeyFmt, categoryID)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if plants, ok := cached.([]*domain.Plant); ok {
			return plants, nil
		}
	}

	var resp interface{}
	var err error
	if categoryID == allPlantsCategoryID {
		resp, err = s.client.ListPlants(ctx)
	} else {
		resp, err = s.client.ListPlantsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	plants := s.normalizePlants(resp)

	if err := s.cache.Set(ctx, cacheKey, plants, s.cacheTTL); err != nil {
		log.Printf("[CATALOG] Failed to cache plants for %q: %v", categoryID, err)
	}

	return plants, nil
}

// LoadPlantsForSelection records categoryID as the active selection and
// loads its plants. If the active selection changed while the fetch was in
// flight, the result is discarded and ErrStaleSelection returned, so a
// slow fetch can never clobber the render of a newer selection.
func (s *CatalogService) LoadPlantsForSelection(ctx context.Context, categoryID string) ([]*domain.Plant, error) {
	if categoryID == "" {
		categoryID = allPlantsCategoryID
	}
	s.SetActiveCategory(categoryID)

	plants, err := s.Plants(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if s.ActiveCategory() != categoryID {
		return nil, domain.ErrStaleSelection
	}
	return plants, nil
}

// SetActiveCategory records the category the user is currently viewing
func (s *CatalogService) SetActiveCategory(categoryID string) {
	if categoryID == "" {
		categoryID = allPlantsCategoryID
	}
	s.mu.Lock()
	s.activeCategory = categoryID
	s.mu.Unlock()
}

// ActiveCategory returns the currently viewed category id
func (s *CatalogService) ActiveCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCategory
}

// PlantDetail fetches one plant's detail record and merges it with the
// best summary already known for that id. Detail responses are not
// cached: the endpoint is unreliable and the merge depends on current
// summary state.
func (s *CatalogService) PlantDetail(ctx context.Context, plantID string) (domain.PlantDetail, error) {
	resp, err := s.client.GetPlantDetail(ctx, plantID)
	if err != nil {
		return domain.PlantDetail{}, err
	}

	fallback := s.summaryFor(plantID)
	return catalog.NormalizeDetail(resp, plantID, fallback), nil
}

// normalizePlants extracts, normalizes and name-backfills a plants
// response, and remembers each summary for later detail merges
func (s *CatalogService) normalizePlants(resp interface{}) []*domain.Plant {
	var plants []*domain.Plant
	for _, raw := range catalog.ExtractList(resp) {
		p := catalog.NormalizePlantSummary(raw)
		if p == nil {
			continue
		}
		catalog.BackfillName(p)
		plants = append(plants, p)
	}

	s.mu.Lock()
	for _, p := range plants {
		s.summaries[p.ID] = p
	}
	s.mu.Unlock()

	return plants
}

// summaryFor returns the last summary seen for a plant id, if any
func (s *CatalogService) summaryFor(plantID string) *domain.Plant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaries[plantID]
}
