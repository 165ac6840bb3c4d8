package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/service"
)

// intQuery reads an integer query parameter, falling back on absence or junk
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// HandleListProducts handles GET /v1/products
func HandleListProducts(products *service.ProductService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := intQuery(c, "page", 1)
		limit := intQuery(c, "limit", 200)

		env := products.GetProducts(c.Request.Context(), page, limit)
		c.JSON(env.HTTPCode, env)
	}
}

// HandleGetProduct handles GET /v1/products/:identifier
func HandleGetProduct(products *service.ProductService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		env := products.GetProductByIdentifier(c.Request.Context(), c.Param("identifier"))
		c.JSON(env.HTTPCode, env)
	}
}

// HandleUpdateInventory handles PUT /v1/products/inventory
func HandleUpdateInventory(products *service.ProductService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.InventoryUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		env := products.UpdateProductsInventory(c.Request.Context(), req.SKU, req.Qty, req.Status)
		c.JSON(env.HTTPCode, env)
	}
}

// HandleBulkUpdateInventory handles PUT /v1/products/inventory/bulk
func HandleBulkUpdateInventory(products *service.ProductService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req []service.InventoryUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		env := products.UpdateBulkProductsInventory(c.Request.Context(), req)
		c.JSON(env.HTTPCode, env)
	}
}
