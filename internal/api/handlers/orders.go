package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/service"
)

// HandleListOrders handles GET /v1/orders
func HandleListOrders(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := service.OrderFilters{
			Statuses:     c.QueryArray("status"),
			CreatedAtMin: c.Query("CreatedAtMin"),
			CreatedAtMax: c.Query("CreatedAtMax"),
			Page:         intQuery(c, "page", 1),
			Limit:        intQuery(c, "limit", 200),
		}

		env := orders.GetOrders(c.Request.Context(), filters)
		c.JSON(env.HTTPCode, env)
	}
}

// HandleGetOrder handles GET /v1/orders/:identifier
func HandleGetOrder(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		env := orders.GetOrderByID(c.Request.Context(), c.Param("identifier"))
		c.JSON(env.HTTPCode, env)
	}
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

// HandleCancelOrder handles POST /v1/orders/:identifier/cancel
func HandleCancelOrder(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cancelOrderRequest
		// Body is optional - a bare cancel carries no reason
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
				return
			}
		}

		env := orders.CancelOrder(c.Request.Context(), c.Param("identifier"), req.Reason)
		c.JSON(env.HTTPCode, env)
	}
}

type refundRequest struct {
	Items []service.RefundItem `json:"items" binding:"required,min=1"`
}

// HandleRefundOrder handles POST /v1/orders/:id/refund
func HandleRefundOrder(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseInt(c.Param("identifier"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		var req refundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		env := orders.ProcessRefund(c.Request.Context(), orderID, req.Items)
		c.JSON(env.HTTPCode, env)
	}
}
