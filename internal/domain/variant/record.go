package variant

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Attribute is one dimension value of a variant
type Attribute struct {
	Dimension Dimension
	Value     string
}

// Record is the fully resolved projection of one combination.
// It is rebuilt on every recomputation and never stored.
type Record struct {
	Identity      Identity
	ID            string
	Attributes    []Attribute
	Price         decimal.Decimal
	SalePrice     *decimal.Decimal
	SKU           string
	StockQuantity int
	Images        []string
	Available     bool
}

// Attribute returns the value for a dimension, "" when unused or unknown
func (r Record) Attribute(d Dimension) string {
	for _, a := range r.Attributes {
		if a.Dimension == d {
			return a.Value
		}
	}
	return ""
}

// Color is shorthand for Attribute(DimensionColor)
func (r Record) Color() string {
	return r.Attribute(DimensionColor)
}

// Size is shorthand for Attribute(DimensionSize)
func (r Record) Size() string {
	return r.Attribute(DimensionSize)
}

// Values returns the attribute values as a combination
func (r Record) Values() Combination {
	values := make(Combination, len(r.Attributes))
	for i, a := range r.Attributes {
		values[i] = a.Value
	}
	return values
}

// EffectivePrice is the sale price when one is set and undercuts the price
func (r Record) EffectivePrice() decimal.Decimal {
	if r.SalePrice != nil && r.SalePrice.IsPositive() && r.SalePrice.LessThan(r.Price) {
		return *r.SalePrice
	}
	return r.Price
}

// DeriveSKU builds the default SKU: the base SKU followed by every non-empty
// value, each lower-cased with whitespace runs collapsed to '-'.
// The mapping is lossy: "Off White" and "Off-White" derive the same SKU, so
// records that need distinct SKUs must carry an override. Record.Identity
// stays distinct in that case.
func DeriveSKU(baseSKU string, values ...string) string {
	parts := make([]string, 0, len(values)+1)
	if p := skuPart(baseSKU); p != "" {
		parts = append(parts, p)
	}
	for _, v := range values {
		if p := skuPart(v); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

func skuPart(s string) string {
	lower := cases.Lower(language.Und).String(s)
	return strings.Join(strings.Fields(lower), "-")
}
