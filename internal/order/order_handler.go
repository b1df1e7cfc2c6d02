package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atuljain2995/Tangry-Website/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GET /orders/:orderNumber
func (h *Handler) Detail(c *gin.Context) {
	o, err := h.service.Detail(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", o)
}

// GET /admin/orders
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	orders, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	response.SuccessWithPagination(c, http.StatusOK, "", orders, response.Pagination{
		Page:            page,
		PageSize:        limit,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	})
}
