package http

import (
	"github.com/gin-gonic/gin"
	"github.com/plantshop/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", handler.ListCategories)
		v1.GET("/plants", handler.ListPlants)
		v1.GET("/plants/:id", handler.GetPlantDetail)

		cart := v1.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.POST("/items", handler.AddCartItem)
			cart.DELETE("/items/:id", handler.RemoveCartItem)
			cart.DELETE("", handler.ClearCart)
		}
	}

	return router
}
