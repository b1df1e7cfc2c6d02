// Package checkout drives the three step purchase flow: shipping
// details, payment selection, confirmation.
package checkout

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/atuljain2995/Tangry-Website/internal/address"
	"github.com/atuljain2995/Tangry-Website/internal/cart"
)

// Step is the shopper's position in the flow.
type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// PaymentMethod identifies how the shopper pays.
type PaymentMethod string

const (
	MethodRazorpay     PaymentMethod = "razorpay"
	MethodStripe       PaymentMethod = "stripe"
	MethodCOD          PaymentMethod = "cod"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// MethodInfo describes a payment method for the selection screen.
type MethodInfo struct {
	ID          PaymentMethod `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	Recommended bool          `json:"recommended"`
}

// Methods lists the selectable payment methods in display order. Bank
// transfer is shown but not selectable.
func Methods() []MethodInfo {
	return []MethodInfo{
		{
			ID:          MethodRazorpay,
			Name:        "Cards / UPI / Wallets",
			Description: "Razorpay - Credit/Debit Cards, UPI, Wallets",
			Available:   true,
			Recommended: true,
		},
		{
			ID:          MethodStripe,
			Name:        "International Cards",
			Description: "Stripe - International Credit/Debit Cards",
			Available:   true,
		},
		{
			ID:          MethodCOD,
			Name:        "Cash on Delivery",
			Description: "Pay when you receive the product",
			Available:   true,
		},
		{
			ID:          MethodBankTransfer,
			Name:        "Bank Transfer",
			Description: "Direct bank transfer (For B2B orders)",
			Available:   false,
		},
	}
}

// MethodAvailable reports whether the method exists and is enabled.
func MethodAvailable(m PaymentMethod) bool {
	for _, info := range Methods() {
		if info.ID == m {
			return info.Available
		}
	}
	return false
}

// Flow is one shopper's checkout state.
type Flow struct {
	Step            Step             `json:"step"`
	ShippingAddress *address.Address `json:"shippingAddress,omitempty"`
	BillingAddress  *address.Address `json:"billingAddress,omitempty"`
	SameAsShipping  bool             `json:"sameAsShipping"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod,omitempty"`
	IsProcessing    bool             `json:"isProcessing"`
	OrderNumber     string           `json:"orderNumber,omitempty"`
}

// FlowView is the flow plus the data the checkout page renders around
// it.
type FlowView struct {
	Flow
	Cart    cart.Cart    `json:"cart"`
	Methods []MethodInfo `json:"methods"`
	States  []string     `json:"states"`
}

// SubmitShippingRequest carries both address forms. Billing is ignored
// when SameAsShipping is set.
type SubmitShippingRequest struct {
	Shipping       address.Address `json:"shipping"`
	Billing        address.Address `json:"billing"`
	SameAsShipping bool            `json:"sameAsShipping"`
}

// SubmitPaymentRequest finalizes the order.
type SubmitPaymentRequest struct {
	Method      PaymentMethod `json:"method"`
	AcceptTerms bool          `json:"acceptTerms"`
}

// GenerateOrderNumber mints a human-readable order number:
// EVR-<millis in base36>-<5 random base36>, upper-cased. Collisions are
// possible in principle but the timestamp component makes them
// vanishingly rare at this store's volume.
func GenerateOrderNumber() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return fmt.Sprintf("EVR-%s-%s", timestamp, randomBase36Upper(5))
}

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomBase36Upper(n int) string {
	max := big.NewInt(int64(len(base36Alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is
			// broken; fall back to the clock rather than abort checkout.
			b[i] = base36Alphabet[time.Now().UnixNano()%36]
			continue
		}
		b[i] = base36Alphabet[idx.Int64()]
	}
	return string(b)
}
