package order

import (
	"github.com/gin-gonic/gin"

	"github.com/atuljain2995/Tangry-Website/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/orders")
	{
		orders.GET("/:orderNumber", handler.Detail)
	}

	admin := r.Group("/admin/orders")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", handler.List)
	}
}
