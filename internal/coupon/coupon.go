package coupon

import (
	"strings"

	"github.com/shopspring/decimal"
)

type RuleType string

const (
	TypePercentage RuleType = "percentage"
	TypeFixed      RuleType = "fixed"
)

type Rule struct {
	Code  string          `json:"code"`
	Type  RuleType        `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// Store resolves a coupon code to its discount rule. Validity windows
// and usage limits live in the orders schema and are not enforced here.
type Store interface {
	Lookup(code string) (Rule, bool)
}

type staticStore struct {
	rules map[string]Rule
}

// NewStaticStore holds the current storefront promotions keyed by
// upper-cased code.
func NewStaticStore() Store {
	rules := map[string]Rule{
		"WELCOME10": {Code: "WELCOME10", Type: TypePercentage, Value: decimal.NewFromInt(10)},
		"FLAT50":    {Code: "FLAT50", Type: TypeFixed, Value: decimal.NewFromInt(50)},
		"FIRST100":  {Code: "FIRST100", Type: TypeFixed, Value: decimal.NewFromInt(100)},
	}
	return &staticStore{rules: rules}
}

func (s *staticStore) Lookup(code string) (Rule, bool) {
	rule, ok := s.rules[strings.ToUpper(strings.TrimSpace(code))]
	return rule, ok
}
