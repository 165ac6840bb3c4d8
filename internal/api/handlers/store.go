package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/omniful/core/internal/service"
)

// HandleStoreInfo handles GET /v1/store/info
func HandleStoreInfo(stores *service.StoreService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := stores.GetStoreInfo(c.Request.Context())
		if result.Error != nil {
			c.JSON(result.Error.Code, result)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
