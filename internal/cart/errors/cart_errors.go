package carterrors

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/atuljain2995/Tangry-Website/internal/pkg/apperror"
)

var (
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidItem = apperror.New(
		apperror.CodeInvalidInput,
		"Cart item is missing required fields",
		http.StatusBadRequest,
	)

	ErrCouponCodeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Coupon code is required",
		http.StatusBadRequest,
	)
)

// MapValidationError flattens validator output into a field -> message
// map attached to an invalid-input error.
func MapValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ErrInvalidItem
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if fieldErr.Field() == "Quantity" {
			return ErrInvalidQuantity
		}
		switch fieldErr.Tag() {
		case "gte":
			fields[fieldErr.Field()] = "must be greater than or equal to " + fieldErr.Param()
		default:
			fields[fieldErr.Field()] = "is required"
		}
	}

	return ErrInvalidItem.WithDetails(fields)
}
