// Package payment abstracts the capture step of checkout behind a
// gateway interface so the flow never talks to a provider SDK directly.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=gateway.go -destination=../mock/payment/gateway_mock.go -package=paymentmock

// CaptureRequest carries what a provider needs to take the money.
type CaptureRequest struct {
	OrderNumber string
	Amount      decimal.Decimal
	Currency    string
	Method      string
}

// CaptureResult reports a completed capture. For offline methods the
// provider fields stay empty.
type CaptureResult struct {
	ProviderOrderID string
	Status          string
}

// Gateway captures a payment for an order.
type Gateway interface {
	Capture(ctx context.Context, req CaptureRequest) (CaptureResult, error)
}
