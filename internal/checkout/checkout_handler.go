package checkout

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

func checkoutKey(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return c.GetString("session_id")
}

// GET /checkout
func (h *Handler) Detail(c *gin.Context) {
	view, err := h.service.StartOrGet(c.Request.Context(), checkoutKey(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", view)
}

// POST /checkout/shipping
func (h *Handler) SubmitShipping(c *gin.Context) {
	var req SubmitShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid shipping payload", err.Error())
		return
	}

	view, err := h.service.SubmitShipping(c.Request.Context(), checkoutKey(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Shipping details saved", view)
}

// POST /checkout/payment
func (h *Handler) SubmitPayment(c *gin.Context) {
	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid payment payload", err.Error())
		return
	}

	view, err := h.service.SubmitPayment(c.Request.Context(), checkoutKey(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Order placed", view)
}

// POST /checkout/back
func (h *Handler) Back(c *gin.Context) {
	view, err := h.service.Back(c.Request.Context(), checkoutKey(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", view)
}
