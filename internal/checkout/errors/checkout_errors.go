package checkouterrors

import (
	"net/http"

	"github.com/atuljain2995/Tangry-Website/internal/pkg/apperror"
)

var (
	// ErrCartEmpty carries the browse-products redirect so the client
	// can send the shopper back instead of showing a failure page.
	ErrCartEmpty = apperror.New(
		"CART_EMPTY",
		"Your cart is empty. Add some products before checkout.",
		http.StatusConflict,
	).WithDetails(map[string]string{"redirect": "/products"})

	ErrWrongStep = apperror.New(
		apperror.CodeConflict,
		"This action is not available at the current checkout step",
		http.StatusConflict,
	)

	ErrMethodUnavailable = apperror.New(
		apperror.CodeInvalidInput,
		"Selected payment method is not available",
		http.StatusBadRequest,
	)

	ErrTermsNotAccepted = apperror.New(
		apperror.CodeInvalidInput,
		"Please accept the terms and conditions",
		http.StatusBadRequest,
	)

	ErrAlreadyProcessing = apperror.New(
		apperror.CodeConflict,
		"Payment is already being processed",
		http.StatusConflict,
	)

	ErrPaymentFailed = apperror.New(
		"PAYMENT_FAILED",
		"Payment failed. Please try again.",
		http.StatusBadGateway,
	)
)

// InvalidAddress wraps the per-field validation map from the shipping
// step.
func InvalidAddress(fields map[string]string) error {
	return apperror.New(
		apperror.CodeInvalidInput,
		"Please correct the highlighted fields",
		http.StatusBadRequest,
	).WithDetails(fields)
}
