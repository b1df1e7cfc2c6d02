package cart

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)

		carts.POST("/items", handler.AddItem)
		items := carts.Group("/items/:productId/:variantId")
		{
			items.PATCH("", handler.UpdateQuantity)
			items.DELETE("", handler.RemoveItem)
		}

		carts.POST("/coupon", handler.ApplyCoupon)
		carts.DELETE("/coupon", handler.RemoveCoupon)

		carts.POST("/preview/open", handler.OpenPreview)
		carts.POST("/preview/close", handler.ClosePreview)
	}
}
