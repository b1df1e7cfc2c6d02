package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atuljain2995/Tangry-Website/internal/address"
)

func validShipping() address.Address {
	return address.Address{
		FullName:     "Asha Patel",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Pune",
		State:        "Maharashtra",
		PostalCode:   "411001",
		Country:      "IN",
		Type:         address.TypeShipping,
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid_address_has_no_errors", func(t *testing.T) {
		assert.Empty(t, address.Validate(validShipping()))
	})

	t.Run("missing_fields", func(t *testing.T) {
		errs := address.Validate(address.Address{})

		assert.Equal(t, "Full name is required", errs["fullName"])
		assert.Equal(t, "Phone number is required", errs["phone"])
		assert.Equal(t, "Address is required", errs["addressLine1"])
		assert.Equal(t, "City is required", errs["city"])
		assert.Equal(t, "State is required", errs["state"])
		assert.Equal(t, "PIN code is required", errs["postalCode"])
	})

	t.Run("whitespace_only_counts_as_missing", func(t *testing.T) {
		a := validShipping()
		a.FullName = "   "

		errs := address.Validate(a)
		assert.Equal(t, "Full name is required", errs["fullName"])
	})

	t.Run("phone_must_be_indian_mobile", func(t *testing.T) {
		for _, phone := range []string{"1234567890", "987654321", "98765432101", "98765abc10"} {
			a := validShipping()
			a.Phone = phone

			errs := address.Validate(a)
			assert.Equal(t, "Invalid phone number", errs["phone"], "phone %q", phone)
		}
	})

	t.Run("pin_must_be_six_digits_no_leading_zero", func(t *testing.T) {
		for _, pin := range []string{"011001", "41100", "4110011", "4110a1"} {
			a := validShipping()
			a.PostalCode = pin

			errs := address.Validate(a)
			assert.Equal(t, "Invalid PIN code", errs["postalCode"], "pin %q", pin)
		}
	})

	t.Run("state_must_be_on_the_list", func(t *testing.T) {
		a := validShipping()
		a.State = "Atlantis"

		errs := address.Validate(a)
		assert.Equal(t, "Invalid state", errs["state"])
	})

	t.Run("address_line_2_is_optional", func(t *testing.T) {
		a := validShipping()
		a.AddressLine2 = ""
		assert.Empty(t, address.Validate(a))
	})
}

func TestValidatePrefixed(t *testing.T) {
	errs := address.ValidatePrefixed("billing", address.Address{})

	assert.Equal(t, "Full name is required", errs["billing_fullName"])
	assert.Equal(t, "Phone number is required", errs["billing_phone"])
	assert.NotContains(t, errs, "fullName")
}

func TestStates(t *testing.T) {
	states := address.States()

	assert.Len(t, states, 30)
	assert.True(t, address.IsState("Tamil Nadu"))
	assert.True(t, address.IsState("Puducherry"))
	assert.False(t, address.IsState("tamil nadu"), "matching is case sensitive")

	// Callers cannot mutate the canonical list.
	states[0] = "Mordor"
	assert.True(t, address.IsState("Andhra Pradesh"))
}

func TestAsBilling(t *testing.T) {
	b := validShipping().AsBilling()

	assert.Equal(t, address.TypeBilling, b.Type)
	assert.Equal(t, "Asha Patel", b.FullName)
}
