package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Razorpay amounts are integers in the smallest currency unit.
var paiseFactor = decimal.NewFromInt(100)

// razorpayGateway creates provider orders through the Razorpay API.
// Amounts go over the wire in paise.
type razorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	logger    *zap.Logger
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	Logger    *zap.Logger
}

func NewRazorpayGateway(cfg RazorpayConfig) Gateway {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		panic("payment: razorpay key id and secret are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &razorpayGateway{
		client:    razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		keySecret: cfg.KeySecret,
		logger:    cfg.Logger,
	}
}

func (g *razorpayGateway) Capture(_ context.Context, req CaptureRequest) (CaptureResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   req.Amount.Mul(paiseFactor).Round(0).IntPart(),
		"currency": currency,
		"receipt":  "receipt_" + req.OrderNumber,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return CaptureResult{}, fmt.Errorf("create razorpay order: %w", err)
	}

	providerID, _ := order["id"].(string)
	g.logger.Info("razorpay order created",
		zap.String("order_number", req.OrderNumber),
		zap.String("razorpay_id", providerID),
	)

	return CaptureResult{ProviderOrderID: providerID, Status: "created"}, nil
}

// VerifySignature checks the HMAC-SHA256 signature Razorpay sends back
// after the shopper completes payment. The signed payload is
// "<razorpayOrderID>|<paymentID>".
func (g *razorpayGateway) VerifySignature(razorpayOrderID, paymentID, signature string) bool {
	return verifySignature(g.keySecret, razorpayOrderID, paymentID, signature)
}

func verifySignature(secret, razorpayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(razorpayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
