// Package catalog serves the spice catalog: products, variants, stock
// and the display figures the storefront derives from them.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/atuljain2995/Tangry-Website/internal/pricing"
)

// Variant is one purchasable pack size of a product.
type Variant struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Price          decimal.Decimal `json:"price"`
	CompareAtPrice decimal.Decimal `json:"compareAtPrice,omitempty"`
	Stock          int64           `json:"stock"`
	Weight         int64           `json:"weight"`
	IsAvailable    bool            `json:"isAvailable"`
}

// Product is a catalog entry with its pack-size variants.
type Product struct {
	ID                string    `json:"id"`
	Slug              string    `json:"slug"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Subcategory       string    `json:"subcategory,omitempty"`
	Variants          []Variant `json:"variants"`
	Images            []string  `json:"images"`
	Features          []string  `json:"features,omitempty"`
	Ingredients       []string  `json:"ingredients,omitempty"`
	UsageInstructions string    `json:"usageInstructions,omitempty"`
	ShelfLife         string    `json:"shelfLife,omitempty"`
	Certifications    []string  `json:"certifications,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	IsFeatured        bool      `json:"isFeatured"`
	IsNew             bool      `json:"isNew"`
	IsBestSeller      bool      `json:"isBestSeller"`
	Rating            float64   `json:"rating"`
	ReviewCount       int64     `json:"reviewCount"`
	MinOrderQuantity  int64     `json:"minOrderQuantity"`
	MaxOrderQuantity  int64     `json:"maxOrderQuantity"`
}

// Variant returns the variant with the given id.
func (p Product) Variant(variantID string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v, true
		}
	}
	return Variant{}, false
}

// StockStatus is the storefront's stock badge.
type StockStatus struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// lowStockThreshold is where the badge switches to the urgency label.
const lowStockThreshold = 10

// StatusForStock maps a stock level to its badge.
func StatusForStock(stock int64) StockStatus {
	switch {
	case stock == 0:
		return StockStatus{Label: "Out of Stock", Color: "red"}
	case stock < lowStockThreshold:
		return StockStatus{Label: fmt.Sprintf("Only %d left", stock), Color: "orange"}
	default:
		return StockStatus{Label: "In Stock", Color: "green"}
	}
}

// VariantView is a variant enriched with the derived display figures.
type VariantView struct {
	Variant
	StockStatus        StockStatus     `json:"stockStatus"`
	Savings            decimal.Decimal `json:"savings"`
	DiscountPercentage int64           `json:"discountPercentage"`
}

// View derives the display figures for a variant.
func View(v Variant) VariantView {
	return VariantView{
		Variant:            v,
		StockStatus:        StatusForStock(v.Stock),
		Savings:            pricing.Savings(v.Price, v.CompareAtPrice),
		DiscountPercentage: pricing.DiscountPercentage(v.Price, v.CompareAtPrice),
	}
}

// ProductView is a product with every variant enriched for display.
type ProductView struct {
	Product
	Variants []VariantView `json:"variants"`
}
