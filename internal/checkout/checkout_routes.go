package checkout

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	flow := r.Group("/checkout")
	{
		flow.GET("", handler.Detail)
		flow.POST("/shipping", handler.SubmitShipping)
		flow.POST("/payment", handler.SubmitPayment)
		flow.POST("/back", handler.Back)
	}
}
