package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atuljain2995/Tangry-Website/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// cartKey prefers the authenticated user id so a logged-in shopper's
// cart follows them; guests fall back to the session cookie.
func cartKey(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return c.GetString("session_id")
}

func (h *Handler) Detail(c *gin.Context) {
	key := cartKey(c)

	cart, err := h.service.Get(c.Request.Context(), key)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", CartResponse{
		Cart:        cart,
		ItemCount:   cart.ItemCount(),
		PreviewOpen: h.service.PreviewOpen(key),
	})
}

func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context(), cartKey(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", CartCountResponse{Count: count})
}

func (h *Handler) AddItem(c *gin.Context) {
	key := cartKey(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid cart item payload", err.Error())
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), key, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// Adding opens the cart drawer on the storefront.
	h.service.OpenPreview(key)

	response.Success(c, http.StatusCreated, "Item added to cart", CartResponse{
		Cart:        cart,
		ItemCount:   cart.ItemCount(),
		PreviewOpen: true,
	})
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid quantity payload", err.Error())
		return
	}

	cart, err := h.service.UpdateQuantity(
		c.Request.Context(),
		cartKey(c),
		c.Param("productId"),
		c.Param("variantId"),
		req.Quantity,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", CartResponse{Cart: cart, ItemCount: cart.ItemCount()})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	cart, err := h.service.RemoveItem(
		c.Request.Context(),
		cartKey(c),
		c.Param("productId"),
		c.Param("variantId"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", CartResponse{Cart: cart, ItemCount: cart.ItemCount()})
}

func (h *Handler) Clear(c *gin.Context) {
	cart, err := h.service.Clear(c.Request.Context(), cartKey(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cart cleared", CartResponse{Cart: cart})
}

func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid coupon payload", err.Error())
		return
	}

	cart, err := h.service.ApplyCoupon(c.Request.Context(), cartKey(c), req.Code)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Coupon applied", CartResponse{Cart: cart, ItemCount: cart.ItemCount()})
}

func (h *Handler) RemoveCoupon(c *gin.Context) {
	cart, err := h.service.RemoveCoupon(c.Request.Context(), cartKey(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Coupon removed", CartResponse{Cart: cart, ItemCount: cart.ItemCount()})
}

func (h *Handler) OpenPreview(c *gin.Context) {
	h.service.OpenPreview(cartKey(c))
	response.Success(c, http.StatusOK, "", nil)
}

func (h *Handler) ClosePreview(c *gin.Context) {
	h.service.ClosePreview(cartKey(c))
	response.Success(c, http.StatusOK, "", nil)
}
