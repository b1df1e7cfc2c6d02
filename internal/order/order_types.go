// Package order persists completed checkouts and serves the
// confirmation and track-order pages.
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atuljain2995/Tangry-Website/internal/address"
)

// EventOrderPlaced is written to the outbox together with every new
// order.
const EventOrderPlaced = "ORDER_PLACED"

const (
	StatusPlaced = "PLACED"
)

// Item is one purchased line, frozen at checkout prices.
type Item struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   string          `json:"productId"`
	VariantID   string          `json:"variantId"`
	ProductName string          `json:"productName"`
	VariantName string          `json:"variantName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Image       string          `json:"image,omitempty"`
}

// Order is a placed order.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	Status          string          `json:"status"`
	Items           []Item          `json:"items"`
	ShippingAddress address.Address `json:"shippingAddress"`
	BillingAddress  address.Address `json:"billingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	CouponCode      string          `json:"couponCode,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Tax             decimal.Decimal `json:"tax"`
	Shipping        decimal.Decimal `json:"shipping"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateRequest is the persistence input handed over by checkout.
type CreateRequest struct {
	OrderNumber     string
	Items           []Item
	ShippingAddress address.Address
	BillingAddress  address.Address
	PaymentMethod   string
	CouponCode      string
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
	Total           decimal.Decimal
}

// PlacedEvent is the ORDER_PLACED outbox payload consumed by the
// order-events worker.
type PlacedEvent struct {
	OrderNumber   string            `json:"orderNumber"`
	PaymentMethod string            `json:"paymentMethod"`
	Total         decimal.Decimal   `json:"total"`
	Items         []PlacedEventItem `json:"items"`
}

// PlacedEventItem is the slice of an item the consumer needs for stock
// updates.
type PlacedEventItem struct {
	ProductID   string `json:"productId"`
	VariantID   string `json:"variantId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
}
