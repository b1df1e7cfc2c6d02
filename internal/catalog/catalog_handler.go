package catalog

import (
	"errors"
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

// GET /products
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Category:   c.Query("category"),
		Tag:        c.Query("tag"),
		Featured:   c.Query("featured") == "true",
		BestSeller: c.Query("bestSeller") == "true",
		New:        c.Query("new") == "true",
	}

	products, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", products)
}

// GET /products/:slug
func (h *Handler) BySlug(c *gin.Context) {
	product, err := h.service.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", product)
}
