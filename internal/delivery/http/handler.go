package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plantshop/backend/internal/domain"
	"github.com/plantshop/backend/internal/infrastructure/catalog"
	"github.com/plantshop/backend/internal/usecase"
)

// BusyGauge reports how many upstream fetches are outstanding
type BusyGauge interface {
	InFlight() int64
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalogService *usecase.CatalogService
	cartService    *usecase.CartService
	busy           BusyGauge
}

// NewHandler creates a new HTTP handler
func NewHandler(catalogService *usecase.CatalogService, cartService *usecase.CartService, busy BusyGauge) *Handler {
	return &Handler{
		catalogService: catalogService,
		cartService:    cartService,
		busy:           busy,
	}
}

// HealthCheck returns the health status of the API, including the number
// of in-flight upstream fetches (the busy indicator: busy while > 0)
func (h *Handler) HealthCheck(c *gin.Context) {
	var inFlight int64
	if h.busy != nil {
		inFlight = h.busy.InFlight()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"service":         "plantshop-backend",
		"version":         "1.0.0",
		"inFlightFetches": inFlight,
	})
}

// ListCategories returns the normalized category list.
// A failure here is localized: the plants and cart panels are unaffected.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load categories.",
		})
		return
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListPlants returns the plants for the requested category selection.
// Missing or "all" loads the whole catalog.
func (h *Handler) ListPlants(c *gin.Context) {
	categoryID := c.Query("category")

	plants, err := h.catalogService.LoadPlantsForSelection(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrStaleSelection) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Selection changed while loading. Please retry.",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load plants. Please try again.",
		})
		return
	}
	if plants == nil {
		plants = []*domain.Plant{}
	}
	c.JSON(http.StatusOK, gin.H{
		"category": h.catalogService.ActiveCategory(),
		"plants":   plants,
	})
}

// GetPlantDetail returns one plant's detail record, merged with the best
// summary already known for that id
func (h *Handler) GetPlantDetail(c *gin.Context) {
	plantID := c.Param("id")

	detail, err := h.catalogService.PlantDetail(c.Request.Context(), plantID)
	if err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Plant not found.",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load plant details. Please try again.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plant": detail})
}

// GetCart returns the aggregated cart view, grand total and line count
func (h *Handler) GetCart(c *gin.Context) {
	total := h.cartService.Total()
	c.JSON(http.StatusOK, gin.H{
		"items":        h.cartService.Aggregate(),
		"total":        total,
		"totalDisplay": catalog.FormatCurrency(total),
		"count":        h.cartService.Count(),
	})
}

// AddCartItem appends one line to the cart
func (h *Handler) AddCartItem(c *gin.Context) {
	var req domain.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrInvalidRequest.Error(),
		})
		return
	}

	h.cartService.Add(req.PlantID, req.Name, req.UnitPrice)
	c.JSON(http.StatusCreated, gin.H{"count": h.cartService.Count()})
}

// RemoveCartItem deletes every line matching the plant id; removing an
// absent id is a harmless no-op
func (h *Handler) RemoveCartItem(c *gin.Context) {
	h.cartService.RemoveAll(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ClearCart empties the cart
func (h *Handler) ClearCart(c *gin.Context) {
	h.cartService.Clear()
	c.Status(http.StatusNoContent)
}
