package variant

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PricingMode selects where a variant's price comes from
type PricingMode string

const (
	// PricingUniform applies one shared price to every variant
	PricingUniform PricingMode = "uniform"
	// PricingPerVariant reads each variant's own price, falling back to the base price
	PricingPerVariant PricingMode = "per_variant"
)

// IsValid returns true if the mode is known
func (m PricingMode) IsValid() bool {
	return m == PricingUniform || m == PricingPerVariant
}

// ParsePricingMode accepts the canonical names plus the product form's
// "same"/"different" radio values
func ParsePricingMode(s string) (PricingMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform", "same":
		return PricingUniform, true
	case "per_variant", "pervariant", "different":
		return PricingPerVariant, true
	default:
		return "", false
	}
}

// Pricing is the pricing mode together with the shared price used in uniform mode
type Pricing struct {
	Mode         PricingMode
	UniformPrice decimal.Decimal
}

// Resolve returns the effective price of a variant.
// Uniform mode ignores any stored price without discarding it.
func (p Pricing) Resolve(o Override, basePrice decimal.Decimal) decimal.Decimal {
	if p.Mode == PricingUniform {
		return p.UniformPrice
	}
	if o.Price != nil {
		return *o.Price
	}
	return basePrice
}
