package cart

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a cart, keyed by (productId, variantId).
// Display fields are denormalized from the catalog at add time.
type CartItem struct {
	ProductID   string          `json:"productId"`
	VariantID   string          `json:"variantId"`
	ProductName string          `json:"productName"`
	VariantName string          `json:"variantName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Image       string          `json:"image"`
}

// Cart is the aggregate root. Subtotal, Discount, Tax, Shipping and
// Total are derived; they are recomputed together after every mutation
// and never set by callers.
type Cart struct {
	ID         string          `json:"id"`
	Items      []CartItem      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
	CouponCode string          `json:"couponCode,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (c Cart) ItemCount() int64 {
	var count int64
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// NewEmptyCart builds a zeroed cart with a fresh opaque id.
func NewEmptyCart() Cart {
	now := time.Now()
	return Cart{
		ID:        fmt.Sprintf("cart_%d_%s", now.UnixMilli(), randomBase36(9)),
		Items:     []CartItem{},
		Subtotal:  decimal.Zero,
		Discount:  decimal.Zero,
		Tax:       decimal.Zero,
		Shipping:  decimal.Zero,
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return string(b)
}

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID   string          `json:"productId" validate:"required"`
	VariantID   string          `json:"variantId" validate:"required"`
	ProductName string          `json:"productName" validate:"required"`
	VariantName string          `json:"variantName" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"required,gte=1"`
	Image       string          `json:"image"`
}

type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type CartResponse struct {
	Cart        Cart  `json:"cart"`
	ItemCount   int64 `json:"itemCount"`
	PreviewOpen bool  `json:"previewOpen"`
}

type CartCountResponse struct {
	Count int64 `json:"count"`
}
