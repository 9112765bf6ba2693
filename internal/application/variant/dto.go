package variant

import (
	"github.com/erp/variants/internal/domain/shared/valueobject"
	"github.com/erp/variants/internal/domain/variant"
	"github.com/shopspring/decimal"
)

// VariantDTO is the wire form of one product variant. It is used both for
// emitted variants and for previously saved variants sent back for editing.
type VariantDTO struct {
	ID            string           `json:"id" binding:"max=100"`
	Color         string           `json:"color" binding:"max=100"`
	Size          string           `json:"size" binding:"max=100"`
	Price         decimal.Decimal  `json:"price"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	SKU           string           `json:"sku" binding:"max=100"`
	StockQuantity int              `json:"stock_quantity" binding:"gte=0"`
	Images        []string         `json:"images,omitempty" binding:"omitempty,max=20,dive,required,max=2048"`
	Available     bool             `json:"available"`
}

// OpenSessionRequest starts an editing session for one product
type OpenSessionRequest struct {
	BasePrice decimal.Decimal `json:"base_price"`
	BaseSKU   string          `json:"base_sku" binding:"max=100"`
	Variants  []VariantDTO    `json:"variants" binding:"omitempty,max=1000,dive"`
}

// SelectValueRequest adds or removes one value of a dimension
type SelectValueRequest struct {
	Dimension string `json:"dimension" binding:"required,max=50"`
	Value     string `json:"value" binding:"required,max=100"`
}

// OverrideRequest edits fields of the variant identified by color and size.
// Omitted fields are left untouched.
type OverrideRequest struct {
	Color         string           `json:"color" binding:"max=100"`
	Size          string           `json:"size" binding:"max=100"`
	ID            *string          `json:"id" binding:"omitempty,min=1,max=100"`
	Price         *decimal.Decimal `json:"price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	SKU           *string          `json:"sku" binding:"omitempty,min=1,max=100"`
	StockQuantity *int             `json:"stock_quantity" binding:"omitempty,gte=0"`
	Images        []string         `json:"images" binding:"omitempty,max=20,dive,required,max=2048"`
	Available     *bool            `json:"available"`
}

// ClearOverrideRequest resets fields of a variant back to their computed defaults
type ClearOverrideRequest struct {
	Color  string   `json:"color" binding:"max=100"`
	Size   string   `json:"size" binding:"max=100"`
	Fields []string `json:"fields" binding:"required,min=1,dive,oneof=id price sale_price sku stock_quantity images available"`
}

// PricingRequest switches the pricing mode.
// UniformPrice defaults to the base price when omitted in uniform mode.
type PricingRequest struct {
	Mode         string           `json:"mode" binding:"required,oneof=uniform per_variant same different"`
	UniformPrice *decimal.Decimal `json:"uniform_price"`
}

// BaseRequest updates the product-level price and SKU
type BaseRequest struct {
	BasePrice decimal.Decimal `json:"base_price"`
	BaseSKU   string          `json:"base_sku" binding:"max=100"`
}

// PreviewRequest describes the full editor state in one call
type PreviewRequest struct {
	BasePrice decimal.Decimal   `json:"base_price"`
	BaseSKU   string            `json:"base_sku" binding:"max=100"`
	Variants  []VariantDTO      `json:"variants" binding:"omitempty,max=1000,dive"`
	Colors    []string          `json:"colors" binding:"omitempty,max=100,dive,max=100"`
	Sizes     []string          `json:"sizes" binding:"omitempty,max=100,dive,max=100"`
	Pricing   *PricingRequest   `json:"pricing"`
	Overrides []OverrideRequest `json:"overrides" binding:"omitempty,max=1000,dive"`
}

// ProjectionResponse is the recomputed variant list together with the
// selections the product should store as available colors and sizes
type ProjectionResponse struct {
	Variants        []VariantDTO       `json:"variants"`
	AvailableColors []string           `json:"available_colors"`
	AvailableSizes  []string           `json:"available_sizes"`
	VariantCount    int                `json:"variant_count"`
	PricingMode     string             `json:"pricing_mode"`
	UniformPrice    *decimal.Decimal   `json:"uniform_price,omitempty"`
	PriceRange      *valueobject.Range `json:"price_range,omitempty"`
}

// SuggestionsResponse is the suggested-value catalog
type SuggestionsResponse struct {
	Colors []variant.ColorSwatch `json:"colors"`
	Sizes  []string              `json:"sizes"`
}
