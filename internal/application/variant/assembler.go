package variant

import (
	"github.com/erp/variants/internal/domain/shared"
	"github.com/erp/variants/internal/domain/shared/valueobject"
	"github.com/erp/variants/internal/domain/variant"
	"github.com/shopspring/decimal"
)

// ToVariantDTO converts a projected record into its wire form
func ToVariantDTO(r variant.Record) VariantDTO {
	dto := VariantDTO{
		ID:            r.ID,
		Color:         r.Color(),
		Size:          r.Size(),
		Price:         r.Price,
		SKU:           r.SKU,
		StockQuantity: r.StockQuantity,
		Available:     r.Available,
	}
	if r.SalePrice != nil {
		sale := *r.SalePrice
		dto.SalePrice = &sale
	}
	if len(r.Images) > 0 {
		dto.Images = append([]string{}, r.Images...)
	}
	return dto
}

// ToProjectionResponse converts a projection and the active pricing into a response
func ToProjectionResponse(p variant.Projection, pricing variant.Pricing, currency valueobject.Currency) *ProjectionResponse {
	resp := &ProjectionResponse{
		Variants:        make([]VariantDTO, len(p.Records)),
		AvailableColors: p.Colors(),
		AvailableSizes:  p.Sizes(),
		VariantCount:    len(p.Records),
		PricingMode:     string(pricing.Mode),
	}
	prices := make([]decimal.Decimal, len(p.Records))
	for i, r := range p.Records {
		resp.Variants[i] = ToVariantDTO(r)
		prices[i] = r.EffectivePrice()
	}
	if pricing.Mode == variant.PricingUniform {
		price := pricing.UniformPrice
		resp.UniformPrice = &price
	}
	if rng, ok := valueobject.RangeOf(currency, prices...); ok {
		resp.PriceRange = &rng
	}
	return resp
}

func toSavedVariant(d VariantDTO) variant.SavedVariant {
	saved := variant.SavedVariant{
		ID: d.ID,
		Attributes: map[variant.Dimension]string{
			variant.DimensionColor: d.Color,
			variant.DimensionSize:  d.Size,
		},
		Price:         d.Price,
		SKU:           d.SKU,
		StockQuantity: d.StockQuantity,
		Images:        append([]string{}, d.Images...),
		Available:     d.Available,
	}
	if d.SalePrice != nil {
		saved.SalePrice = variant.Ptr(*d.SalePrice)
	}
	return saved
}

func toOverride(req OverrideRequest) variant.Override {
	o := variant.Override{
		ID:            req.ID,
		Price:         req.Price,
		SalePrice:     req.SalePrice,
		SKU:           req.SKU,
		StockQuantity: req.StockQuantity,
		Available:     req.Available,
	}
	if req.Images != nil {
		o.Images = append([]string{}, req.Images...)
	}
	return o
}

func toFields(names []string) []variant.Field {
	fields := make([]variant.Field, len(names))
	for i, n := range names {
		fields[i] = variant.Field(n)
	}
	return fields
}

type namedAmount struct {
	name  string
	value *decimal.Decimal
}

// checkAmounts rejects negative money values, which the binding tags cannot express for decimals
func checkAmounts(amounts ...namedAmount) error {
	for _, a := range amounts {
		if a.value != nil && a.value.IsNegative() {
			return shared.Errorf(shared.CodeInvalidInput, "Invalid input: %s must not be negative", a.name)
		}
	}
	return nil
}
