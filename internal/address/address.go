// Package address holds the shipping and billing address model and its
// India-specific validation rules.
package address

// Type distinguishes where an address is used on an order.
type Type string

const (
	TypeShipping Type = "shipping"
	TypeBilling  Type = "billing"
)

// Address is a delivery or billing address. Country is fixed to India;
// the storefront only ships domestically and prices international
// shipping as a deterrent.
type Address struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Type         Type   `json:"type"`
	IsDefault    bool   `json:"isDefault"`
}

// AsBilling returns a copy usable as the billing address when the
// shopper ticks "billing same as shipping".
func (a Address) AsBilling() Address {
	b := a
	b.Type = TypeBilling
	return b
}

var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Delhi", "Puducherry",
}

// States returns the selectable Indian states and union territories in
// display order.
func States() []string {
	out := make([]string, len(indianStates))
	copy(out, indianStates)
	return out
}

// IsState reports whether name is on the selectable state list.
func IsState(name string) bool {
	for _, s := range indianStates {
		if s == name {
			return true
		}
	}
	return false
}
