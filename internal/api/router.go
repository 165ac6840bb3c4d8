package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/api/handlers"
	"github.com/omniful/core/internal/api/middleware"
	"github.com/omniful/core/internal/config"
	"github.com/omniful/core/internal/service"
)

// Services bundles the projectors the router exposes
type Services struct {
	Products *service.ProductService
	Orders   *service.OrderService
	Stores   *service.StoreService
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, services *Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.APIKeyMiddleware(cfg.API.KeyHash, logger))
	{
		v1.GET("/products", handlers.HandleListProducts(services.Products, logger))
		v1.PUT("/products/inventory", handlers.HandleUpdateInventory(services.Products, logger))
		v1.PUT("/products/inventory/bulk", handlers.HandleBulkUpdateInventory(services.Products, logger))
		v1.GET("/products/:identifier", handlers.HandleGetProduct(services.Products, logger))

		v1.GET("/orders", handlers.HandleListOrders(services.Orders, logger))
		v1.GET("/orders/:identifier", handlers.HandleGetOrder(services.Orders, logger))
		v1.POST("/orders/:identifier/cancel", handlers.HandleCancelOrder(services.Orders, logger))
		v1.POST("/orders/:identifier/refund", handlers.HandleRefundOrder(services.Orders, logger))

		v1.GET("/store/info", handlers.HandleStoreInfo(services.Stores, logger))
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
