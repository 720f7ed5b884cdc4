package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pricepersize/backend/config"
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
		compare := v1.Group("/compare")
		{
			compare.POST("", handler.Compare)
			compare.POST("/preview", handler.Preview)
		}

		v1.POST("/shelf-check", handler.ShelfCheck)

		receipts := v1.Group("/receipts")
		{
			receipts.POST("/scan", handler.ScanReceipt)
			receipts.POST("/confirm", handler.ConfirmReceipt)
		}

		pantry := v1.Group("/pantry")
		{
			pantry.GET("", handler.ListPantry)
			pantry.GET("/search", handler.SearchPantry)
			pantry.PATCH("/:id", handler.UpdatePantryStatus)
			pantry.DELETE("/:id", handler.DeletePantryItem)
		}
	}

	return router
}
