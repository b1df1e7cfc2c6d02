package address

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Indian mobile numbers: ten digits starting 6-9.
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	// Indian PIN codes: six digits, no leading zero.
	pinPattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// ValidPhone reports whether phone is a valid Indian mobile number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidPIN reports whether code is a valid Indian PIN code.
func ValidPIN(code string) bool {
	return pinPattern.MatchString(code)
}

// form mirrors Address with the validation tags attached. Validation
// runs against this shape so the Address type itself stays tag-free.
type form struct {
	FullName     string `validate:"required"`
	Phone        string `validate:"required,in_phone"`
	AddressLine1 string `validate:"required"`
	City         string `validate:"required"`
	State        string `validate:"required,in_state"`
	PostalCode   string `validate:"required,in_pin"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for a blank tag or nil func.
	_ = v.RegisterValidation("in_phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("in_pin", func(fl validator.FieldLevel) bool {
		return ValidPIN(fl.Field().String())
	})
	_ = v.RegisterValidation("in_state", func(fl validator.FieldLevel) bool {
		return IsState(fl.Field().String())
	})
	return v
}

// messages keyed by field then failed tag, written for direct display
// next to the form field.
var messages = map[string]map[string]string{
	"FullName":     {"required": "Full name is required"},
	"Phone":        {"required": "Phone number is required", "in_phone": "Invalid phone number"},
	"AddressLine1": {"required": "Address is required"},
	"City":         {"required": "City is required"},
	"State":        {"required": "State is required", "in_state": "Invalid state"},
	"PostalCode":   {"required": "PIN code is required", "in_pin": "Invalid PIN code"},
}

// jsonField maps struct field names to their storefront form keys.
var jsonField = map[string]string{
	"FullName":     "fullName",
	"Phone":        "phone",
	"AddressLine1": "addressLine1",
	"City":         "city",
	"State":        "state",
	"PostalCode":   "postalCode",
}

// Validate checks a single address and returns a field → message map,
// empty when the address is valid.
func Validate(a Address) map[string]string {
	errs := map[string]string{}

	// Whitespace-only input counts as missing.
	err := validate.Struct(form{
		FullName:     strings.TrimSpace(a.FullName),
		Phone:        strings.TrimSpace(a.Phone),
		AddressLine1: strings.TrimSpace(a.AddressLine1),
		City:         strings.TrimSpace(a.City),
		State:        strings.TrimSpace(a.State),
		PostalCode:   strings.TrimSpace(a.PostalCode),
	})
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["address"] = "Invalid address"
		return errs
	}

	for _, fe := range fieldErrs {
		field := jsonField[fe.StructField()]
		if msg, ok := messages[fe.StructField()][fe.Tag()]; ok {
			errs[field] = msg
		} else {
			errs[field] = "Invalid value"
		}
	}
	return errs
}

// ValidatePrefixed validates an address and keys every message as
// "<prefix>_<field>" so shipping and billing errors can share one map.
func ValidatePrefixed(prefix string, a Address) map[string]string {
	errs := map[string]string{}
	for field, msg := range Validate(a) {
		errs[prefix+"_"+field] = msg
	}
	return errs
}
