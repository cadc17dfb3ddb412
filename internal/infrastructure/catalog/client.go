package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/plantshop/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the upstream plant catalog API.
// Responses are decoded into untyped values; the normalizer is the typed
// boundary that absorbs the API's inconsistent shapes.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
	inFlight    atomic.Int64
}

// NewClient creates a new catalog API client.
// requestsPerMinute bounds calls to the upstream API; zero or negative
// falls back to a conservative default.
func NewClient(baseURL string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 120
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// InFlight reports how many upstream fetches are currently outstanding.
// The delivery layer surfaces this as the busy indicator: busy while > 0.
func (c *Client) InFlight() int64 {
	return c.inFlight.Load()
}

// ListPlants fetches every plant in the catalog
func (c *Client) ListPlants(ctx context.Context) (interface{}, error) {
	return c.getWithRetry(ctx, c.baseURL+"/plants")
}

// ListCategories fetches the category list
func (c *Client) ListCategories(ctx context.Context) (interface{}, error) {
	return c.getWithRetry(ctx, c.baseURL+"/categories")
}

// ListPlantsByCategory fetches the plants for one category
func (c *Client) ListPlantsByCategory(ctx context.Context, categoryID string) (interface{}, error) {
	return c.getWithRetry(ctx, fmt.Sprintf("%s/category/%s", c.baseURL, categoryID))
}

// GetPlantDetail fetches one plant's detail record. The detail endpoint is
// the least reliable upstream surface, so no retries: callers merge the
// result with the summary they already have.
func (c *Client) GetPlantDetail(ctx context.Context, plantID string) (interface{}, error) {
	c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/plant/%s", c.baseURL, plantID)
	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrPlantNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogAPIFailure, resp.StatusCode, string(body))
	}

	var payload interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return payload, nil
}

// getWithRetry executes a GET with up to 3 attempts for transient failures
func (c *Client) getWithRetry(ctx context.Context, reqURL string) (interface{}, error) {
	c.inFlight.Add(1)
	defer c.inFlight.Add(-1)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			log.Printf("[CATALOG] Rate limiter error: %v", err)
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[CATALOG] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[CATALOG] API error (attempt %d) - Status: %d, URL: %s", attempt, resp.StatusCode, reqURL)
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrPlantNotFound
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var payload interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Printf("[CATALOG] JSON decode error: %v", err)
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[CATALOG] GET %s -> %d bytes", reqURL, len(body))
		}
		return payload, nil
	}

	log.Printf("[CATALOG] All retries failed for URL: %s", reqURL)
	return nil, lastErr
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PlantShop/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}

	return resp, nil
}

// exponentialBackoff returns the sleep duration before the next retry:
// 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}
