package checkout

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/atuljain2995/Tangry-Website/internal/address"
	"github.com/atuljain2995/Tangry-Website/internal/cart"
	checkouterrors "github.com/atuljain2995/Tangry-Website/internal/checkout/errors"
	"github.com/atuljain2995/Tangry-Website/internal/payment"
)

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=checkoutmock

// PlaceOrderRequest is the handoff to order persistence once payment
// succeeds.
type PlaceOrderRequest struct {
	OrderNumber     string
	Items           []cart.CartItem
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

// OrderPlacer persists a completed checkout. Wired to the order module
// in the registry.
type OrderPlacer interface {
	Place(ctx context.Context, req PlaceOrderRequest) error
}

type Service interface {
	// StartOrGet returns the shopper's flow, guarding against an empty
	// cart everywhere except the confirmation step.
	StartOrGet(ctx context.Context, key string) (FlowView, error)

	SubmitShipping(ctx context.Context, key string, req SubmitShippingRequest) (FlowView, error)
	SubmitPayment(ctx context.Context, key string, req SubmitPaymentRequest) (FlowView, error)

	// Back returns from payment to shipping, keeping entered data.
	Back(ctx context.Context, key string) (FlowView, error)
}

type Deps struct {
	Cart     cart.Service
	Flows    *FlowStore
	Gateways map[PaymentMethod]payment.Gateway
	Orders   OrderPlacer
	Logger   *zap.Logger
}

type service struct {
	cart     cart.Service
	flows    *FlowStore
	gateways map[PaymentMethod]payment.Gateway
	orders   OrderPlacer
	logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Cart == nil {
		panic("checkout: Cart is required")
	}
	if deps.Flows == nil {
		panic("checkout: Flows is required")
	}
	if deps.Orders == nil {
		panic("checkout: Orders is required")
	}
	if deps.Gateways == nil {
		deps.Gateways = map[PaymentMethod]payment.Gateway{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		cart:     deps.Cart,
		flows:    deps.Flows,
		gateways: deps.Gateways,
		orders:   deps.Orders,
		logger:   deps.Logger,
	}
}

func (s *service) view(flow Flow, c cart.Cart) FlowView {
	return FlowView{
		Flow:    flow,
		Cart:    c,
		Methods: Methods(),
		States:  address.States(),
	}
}

func (s *service) StartOrGet(ctx context.Context, key string) (FlowView, error) {
	flow := s.flows.Get(key)

	c, err := s.cart.Get(ctx, key)
	if err != nil {
		return FlowView{}, err
	}

	if len(c.Items) == 0 && flow.Step != StepConfirmation {
		return FlowView{}, checkouterrors.ErrCartEmpty
	}

	s.flows.Set(key, flow)
	return s.view(flow, c), nil
}

func (s *service) SubmitShipping(ctx context.Context, key string, req SubmitShippingRequest) (FlowView, error) {
	flow := s.flows.Get(key)
	if flow.Step != StepShipping {
		return FlowView{}, checkouterrors.ErrWrongStep
	}

	c, err := s.cart.Get(ctx, key)
	if err != nil {
		return FlowView{}, err
	}
	if len(c.Items) == 0 {
		return FlowView{}, checkouterrors.ErrCartEmpty
	}

	fieldErrs := address.ValidatePrefixed("shipping", req.Shipping)
	if !req.SameAsShipping {
		for field, msg := range address.ValidatePrefixed("billing", req.Billing) {
			fieldErrs[field] = msg
		}
	}
	if len(fieldErrs) > 0 {
		return FlowView{}, checkouterrors.InvalidAddress(fieldErrs)
	}

	shipping := req.Shipping
	shipping.Type = address.TypeShipping
	shipping.Country = "IN"

	var billing address.Address
	if req.SameAsShipping {
		billing = shipping.AsBilling()
	} else {
		billing = req.Billing
		billing.Type = address.TypeBilling
		billing.Country = "IN"
	}

	flow.ShippingAddress = &shipping
	flow.BillingAddress = &billing
	flow.SameAsShipping = req.SameAsShipping
	flow.Step = StepPayment
	s.flows.Set(key, flow)

	return s.view(flow, c), nil
}

func (s *service) SubmitPayment(ctx context.Context, key string, req SubmitPaymentRequest) (FlowView, error) {
	flow := s.flows.Get(key)
	if flow.Step != StepPayment {
		return FlowView{}, checkouterrors.ErrWrongStep
	}
	if !MethodAvailable(req.Method) {
		return FlowView{}, checkouterrors.ErrMethodUnavailable
	}
	if !req.AcceptTerms {
		return FlowView{}, checkouterrors.ErrTermsNotAccepted
	}

	if !s.flows.BeginProcessing(key) {
		return FlowView{}, checkouterrors.ErrAlreadyProcessing
	}
	defer s.flows.EndProcessing(key)

	c, err := s.cart.Get(ctx, key)
	if err != nil {
		return FlowView{}, err
	}
	if len(c.Items) == 0 {
		return FlowView{}, checkouterrors.ErrCartEmpty
	}

	orderNumber := GenerateOrderNumber()

	gateway, ok := s.gateways[req.Method]
	if !ok {
		gateway = payment.NewNoopGateway()
	}
	capture, err := gateway.Capture(ctx, payment.CaptureRequest{
		OrderNumber: orderNumber,
		Amount:      c.Total,
		Currency:    "INR",
		Method:      string(req.Method),
	})
	if err != nil {
		s.logger.Warn("payment capture failed",
			zap.String("order_number", orderNumber),
			zap.String("method", string(req.Method)),
			zap.Error(err),
		)
		return FlowView{}, checkouterrors.ErrPaymentFailed
	}

	err = s.orders.Place(ctx, PlaceOrderRequest{
		OrderNumber:     orderNumber,
		Items:           c.Items,
		ShippingAddress: *flow.ShippingAddress,
		BillingAddress:  *flow.BillingAddress,
		PaymentMethod:   string(req.Method),
		CouponCode:      c.CouponCode,
		Subtotal:        c.Subtotal,
		Discount:        c.Discount,
		Tax:             c.Tax,
		Shipping:        c.Shipping,
		Total:           c.Total,
	})
	if err != nil {
		return FlowView{}, err
	}

	// The cart is spent. A clear failure here would leave stale items
	// behind, but the order is already placed, so log and move on.
	cleared, err := s.cart.Clear(ctx, key)
	if err != nil {
		s.logger.Error("cart clear after order failed",
			zap.String("order_number", orderNumber),
			zap.Error(err),
		)
		cleared = cart.NewEmptyCart()
	}

	flow.PaymentMethod = req.Method
	flow.OrderNumber = orderNumber
	flow.Step = StepConfirmation
	s.flows.Set(key, flow)

	s.logger.Info("order placed",
		zap.String("order_number", orderNumber),
		zap.String("method", string(req.Method)),
		zap.String("total", c.Total.String()),
		zap.String("provider_status", capture.Status),
	)

	return s.view(flow, cleared), nil
}

func (s *service) Back(ctx context.Context, key string) (FlowView, error) {
	flow := s.flows.Get(key)
	if flow.Step != StepPayment {
		return FlowView{}, checkouterrors.ErrWrongStep
	}

	c, err := s.cart.Get(ctx, key)
	if err != nil {
		return FlowView{}, err
	}

	flow.Step = StepShipping
	s.flows.Set(key, flow)

	return s.view(flow, c), nil
}
