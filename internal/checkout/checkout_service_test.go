package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atuljain2995/Tangry-Website/internal/address"
	"github.com/atuljain2995/Tangry-Website/internal/cart"
	"github.com/atuljain2995/Tangry-Website/internal/checkout"
	checkouterrors "github.com/atuljain2995/Tangry-Website/internal/checkout/errors"
	"github.com/atuljain2995/Tangry-Website/internal/coupon"
	paymentmock "github.com/atuljain2995/Tangry-Website/internal/mock/payment"
	"github.com/atuljain2995/Tangry-Website/internal/payment"
	"github.com/atuljain2995/Tangry-Website/internal/pricing"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// fakeOrderPlacer records handoffs.
type fakeOrderPlacer struct {
	placed []checkout.PlaceOrderRequest
	err    error
}

func (f *fakeOrderPlacer) Place(_ context.Context, req checkout.PlaceOrderRequest) error {
	if f.err != nil {
		return f.err
	}
	f.placed = append(f.placed, req)
	return nil
}

type fixture struct {
	cart    cart.Service
	orders  *fakeOrderPlacer
	service checkout.Service
}

func newFixture(t *testing.T, gateways map[checkout.PaymentMethod]payment.Gateway) *fixture {
	t.Helper()

	cartSvc := cart.NewService(cart.Deps{
		Storage: cart.NewMemoryStorage(),
		Engine:  pricing.NewEngine(coupon.NewStaticStore()),
	})
	orders := &fakeOrderPlacer{}

	return &fixture{
		cart:   cartSvc,
		orders: orders,
		service: checkout.NewService(checkout.Deps{
			Cart:     cartSvc,
			Flows:    checkout.NewFlowStore(),
			Gateways: gateways,
			Orders:   orders,
		}),
	}
}

func (f *fixture) fillCart(t *testing.T, key string) {
	t.Helper()
	_, err := f.cart.AddItem(context.Background(), key, cart.AddItemRequest{
		ProductID:   "1",
		VariantID:   "gm-100g",
		ProductName: "Garam Masala",
		VariantName: "100g",
		Price:       dec("85"),
		Quantity:    2,
	})
	require.NoError(t, err)
}

func shippingForm() checkout.SubmitShippingRequest {
	return checkout.SubmitShippingRequest{
		Shipping: address.Address{
			FullName:     "Asha Patel",
			Phone:        "9876543210",
			AddressLine1: "12 MG Road",
			City:         "Pune",
			State:        "Maharashtra",
			PostalCode:   "411001",
		},
		SameAsShipping: true,
	}
}

func (f *fixture) toPaymentStep(t *testing.T, key string) {
	t.Helper()
	f.fillCart(t, key)
	_, err := f.service.SubmitShipping(context.Background(), key, shippingForm())
	require.NoError(t, err)
}

func TestCheckout_StartOrGet(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_cart_is_guarded", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.service.StartOrGet(ctx, "s")
		assert.ErrorIs(t, err, checkouterrors.ErrCartEmpty)
	})

	t.Run("starts_at_shipping", func(t *testing.T) {
		f := newFixture(t, nil)
		f.fillCart(t, "s")

		view, err := f.service.StartOrGet(ctx, "s")
		require.NoError(t, err)

		assert.Equal(t, checkout.StepShipping, view.Step)
		assert.Len(t, view.Methods, 4)
		assert.Len(t, view.States, 30)
		assert.Equal(t, int64(2), view.Cart.ItemCount())
	})
}

func TestCheckout_SubmitShipping(t *testing.T) {
	ctx := context.Background()

	t.Run("advances_to_payment", func(t *testing.T) {
		f := newFixture(t, nil)
		f.fillCart(t, "s")

		view, err := f.service.SubmitShipping(ctx, "s", shippingForm())
		require.NoError(t, err)

		assert.Equal(t, checkout.StepPayment, view.Step)
		require.NotNil(t, view.ShippingAddress)
		assert.Equal(t, address.TypeShipping, view.ShippingAddress.Type)
		assert.Equal(t, "IN", view.ShippingAddress.Country)
	})

	t.Run("same_as_shipping_copies_billing", func(t *testing.T) {
		f := newFixture(t, nil)
		f.fillCart(t, "s")

		view, err := f.service.SubmitShipping(ctx, "s", shippingForm())
		require.NoError(t, err)

		require.NotNil(t, view.BillingAddress)
		assert.Equal(t, address.TypeBilling, view.BillingAddress.Type)
		assert.Equal(t, view.ShippingAddress.FullName, view.BillingAddress.FullName)
		assert.True(t, view.SameAsShipping)
	})

	t.Run("separate_billing_is_validated", func(t *testing.T) {
		f := newFixture(t, nil)
		f.fillCart(t, "s")

		req := shippingForm()
		req.SameAsShipping = false
		req.Billing = address.Address{Phone: "12345"}

		_, err := f.service.SubmitShipping(ctx, "s", req)
		require.Error(t, err)
		assert.NotErrorIs(t, err, checkouterrors.ErrCartEmpty)
	})

	t.Run("invalid_shipping_surfaces_field_errors", func(t *testing.T) {
		f := newFixture(t, nil)
		f.fillCart(t, "s")

		req := shippingForm()
		req.Shipping.Phone = "12345"

		_, err := f.service.SubmitShipping(ctx, "s", req)
		require.Error(t, err)
	})

	t.Run("empty_cart_is_guarded", func(t *testing.T) {
		f := newFixture(t, nil)

		_, err := f.service.SubmitShipping(ctx, "s", shippingForm())
		assert.ErrorIs(t, err, checkouterrors.ErrCartEmpty)
	})
}

func TestCheckout_SubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("cod_places_order_and_clears_cart", func(t *testing.T) {
		f := newFixture(t, nil)
		f.toPaymentStep(t, "s")

		view, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method:      checkout.MethodCOD,
			AcceptTerms: true,
		})
		require.NoError(t, err)

		assert.Equal(t, checkout.StepConfirmation, view.Step)
		assert.Regexp(t, `^EVR-[0-9A-Z]+-[0-9A-Z]{5}$`, view.OrderNumber)

		require.Len(t, f.orders.placed, 1)
		placed := f.orders.placed[0]
		assert.Equal(t, view.OrderNumber, placed.OrderNumber)
		assert.Equal(t, "cod", placed.PaymentMethod)
		assert.True(t, placed.Subtotal.Equal(dec("170")))
		assert.True(t, placed.Tax.Equal(dec("8.5")))
		assert.True(t, placed.Shipping.Equal(dec("40")))
		assert.True(t, placed.Total.Equal(dec("218.5")))

		// Cart is spent after confirmation.
		assert.Empty(t, view.Cart.Items)
		c, err := f.cart.Get(ctx, "s")
		require.NoError(t, err)
		assert.Empty(t, c.Items)
		assert.Empty(t, c.CouponCode)
	})

	t.Run("razorpay_capture_goes_through_gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := paymentmock.NewMockGateway(ctrl)
		gateway.EXPECT().
			Capture(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.CaptureRequest) (payment.CaptureResult, error) {
				assert.Equal(t, "razorpay", req.Method)
				assert.Equal(t, "INR", req.Currency)
				assert.True(t, req.Amount.Equal(dec("218.5")))
				return payment.CaptureResult{ProviderOrderID: "order_test123", Status: "created"}, nil
			})

		f := newFixture(t, map[checkout.PaymentMethod]payment.Gateway{
			checkout.MethodRazorpay: gateway,
		})
		f.toPaymentStep(t, "s")

		view, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method:      checkout.MethodRazorpay,
			AcceptTerms: true,
		})
		require.NoError(t, err)
		assert.Equal(t, checkout.StepConfirmation, view.Step)
	})

	t.Run("capture_failure_keeps_payment_step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gateway := paymentmock.NewMockGateway(ctrl)
		gateway.EXPECT().
			Capture(gomock.Any(), gomock.Any()).
			Return(payment.CaptureResult{}, errors.New("provider down"))

		f := newFixture(t, map[checkout.PaymentMethod]payment.Gateway{
			checkout.MethodRazorpay: gateway,
		})
		f.toPaymentStep(t, "s")

		_, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method:      checkout.MethodRazorpay,
			AcceptTerms: true,
		})
		assert.ErrorIs(t, err, checkouterrors.ErrPaymentFailed)

		// The flow is recoverable and the cart untouched.
		view, err := f.service.StartOrGet(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, view.Step)
		assert.Len(t, view.Cart.Items, 1)
		assert.Empty(t, f.orders.placed)
	})

	t.Run("disabled_method_is_rejected", func(t *testing.T) {
		f := newFixture(t, nil)
		f.toPaymentStep(t, "s")

		_, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method:      checkout.MethodBankTransfer,
			AcceptTerms: true,
		})
		assert.ErrorIs(t, err, checkouterrors.ErrMethodUnavailable)
	})

	t.Run("unknown_method_is_rejected", func(t *testing.T) {
		f := newFixture(t, nil)
		f.toPaymentStep(t, "s")

		_, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method:      "bitcoin",
			AcceptTerms: true,
		})
		assert.ErrorIs(t, err, checkouterrors.ErrMethodUnavailable)
	})

	t.Run("terms_must_be_accepted", func(t *testing.T) {
		f := newFixture(t, nil)
		f.toPaymentStep(t, "s")

		_, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method: checkout.MethodCOD,
		})
		assert.ErrorIs(t, err, checkouterrors.ErrTermsNotAccepted)
	})

	t.Run("cannot_pay_from_shipping_step", func(t *testing.T) {
		f := newFixture(t, nil)
		f.fillCart(t, "s")

		_, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method:      checkout.MethodCOD,
			AcceptTerms: true,
		})
		assert.ErrorIs(t, err, checkouterrors.ErrWrongStep)
	})

	t.Run("order_persistence_failure_bubbles", func(t *testing.T) {
		f := newFixture(t, nil)
		f.toPaymentStep(t, "s")
		f.orders.err = errors.New("db down")

		_, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method:      checkout.MethodCOD,
			AcceptTerms: true,
		})
		require.Error(t, err)

		// Still at payment; nothing placed, cart intact.
		view, err := f.service.StartOrGet(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, checkout.StepPayment, view.Step)
		assert.Len(t, view.Cart.Items, 1)
	})

	t.Run("confirmation_is_reachable_with_empty_cart", func(t *testing.T) {
		f := newFixture(t, nil)
		f.toPaymentStep(t, "s")

		_, err := f.service.SubmitPayment(ctx, "s", checkout.SubmitPaymentRequest{
			Method:      checkout.MethodCOD,
			AcceptTerms: true,
		})
		require.NoError(t, err)

		view, err := f.service.StartOrGet(ctx, "s")
		require.NoError(t, err)
		assert.Equal(t, checkout.StepConfirmation, view.Step)
	})
}

func TestCheckout_Back(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_to_shipping_keeping_data", func(t *testing.T) {
		f := newFixture(t, nil)
		f.toPaymentStep(t, "s")

		view, err := f.service.Back(ctx, "s")
		require.NoError(t, err)

		assert.Equal(t, checkout.StepShipping, view.Step)
		require.NotNil(t, view.ShippingAddress)
		assert.Equal(t, "Asha Patel", view.ShippingAddress.FullName)
	})

	t.Run("only_from_payment_step", func(t *testing.T) {
		f := newFixture(t, nil)
		f.fillCart(t, "s")

		_, err := f.service.Back(ctx, "s")
		assert.ErrorIs(t, err, checkouterrors.ErrWrongStep)
	})
}

func TestGenerateOrderNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := checkout.GenerateOrderNumber()
		assert.Regexp(t, `^EVR-[0-9A-Z]+-[0-9A-Z]{5}$`, n)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 90, "order numbers should nearly always be unique")
}
