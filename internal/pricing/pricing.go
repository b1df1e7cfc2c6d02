// Package pricing holds the pure money math behind cart totals: subtotal,
// coupon discount, GST, shipping and savings. Everything here is
// side-effect free; the cart service calls Totals after every mutation so
// the derived fields always change together.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/atuljain2995/Tangry-Website/internal/coupon"
)

const HomeCountry = "IN"

var (
	// 5% GST on spices, applied to the post-discount subtotal.
	gstRate = decimal.NewFromFloat(0.05)

	// Free shipping above Rs. 499 for domestic orders.
	freeShippingThreshold = decimal.NewFromInt(499)
	domesticShippingFee   = decimal.NewFromInt(40)
	internationalFee      = decimal.NewFromInt(500)

	oneHundred = decimal.NewFromInt(100)
)

type LineItem struct {
	Price    decimal.Decimal
	Quantity int64
}

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

type Engine struct {
	coupons coupon.Store
}

func NewEngine(coupons coupon.Store) *Engine {
	return &Engine{coupons: coupons}
}

func Subtotal(items []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return subtotal
}

// Discount resolves the coupon code against the subtotal. Unknown codes
// yield zero rather than an error; a fixed rule is NOT clamped to the
// subtotal, so a large fixed coupon can push the payable amount negative.
func (e *Engine) Discount(subtotal decimal.Decimal, couponCode string) decimal.Decimal {
	if couponCode == "" {
		return decimal.Zero
	}

	rule, ok := e.coupons.Lookup(couponCode)
	if !ok {
		return decimal.Zero
	}

	if rule.Type == coupon.TypePercentage {
		return subtotal.Mul(rule.Value).Div(oneHundred)
	}
	return rule.Value
}

func Tax(taxable decimal.Decimal) decimal.Decimal {
	return taxable.Mul(gstRate)
}

// Shipping is computed from the subtotal and destination country. The
// cart does not know the destination before address collection, so
// callers pass HomeCountry until checkout supplies the real one.
func Shipping(subtotal decimal.Decimal, country string) decimal.Decimal {
	if country == HomeCountry && subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		return decimal.Zero
	}
	if country == HomeCountry {
		return domesticShippingFee
	}
	return internationalFee
}

// Compute recalculates every derived figure from the line items, coupon
// and destination in one pass. Partial recomputation is never valid.
func (e *Engine) Compute(items []LineItem, couponCode, country string) Totals {
	subtotal := Subtotal(items)
	discount := e.Discount(subtotal, couponCode)
	tax := Tax(subtotal.Sub(discount))
	shipping := Shipping(subtotal, country)
	total := subtotal.Sub(discount).Add(tax).Add(shipping)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Shipping: shipping,
		Total:    total,
	}
}

// Savings is the difference against the compare-at price, zero when
// there is no strike-through price.
func Savings(price, compareAt decimal.Decimal) decimal.Decimal {
	if compareAt.LessThanOrEqual(price) {
		return decimal.Zero
	}
	return compareAt.Sub(price)
}

// DiscountPercentage is the rounded strike-through percentage shown on
// product cards.
func DiscountPercentage(price, compareAt decimal.Decimal) int64 {
	if compareAt.LessThanOrEqual(price) || compareAt.IsZero() {
		return 0
	}
	return compareAt.Sub(price).Div(compareAt).Mul(oneHundred).Round(0).IntPart()
}
