package variant

import "github.com/shopspring/decimal"

// Field names an editable per-variant field
type Field string

const (
	FieldID            Field = "id"
	FieldPrice         Field = "price"
	FieldSalePrice     Field = "sale_price"
	FieldSKU           Field = "sku"
	FieldStockQuantity Field = "stock_quantity"
	FieldImages        Field = "images"
	FieldAvailable     Field = "available"
)

// Override is the user-entered data of one variant.
// A nil field was never edited and falls back to the computed default.
// Images follows the same rule: nil is unset, an empty non-nil slice is an explicit "no images".
type Override struct {
	ID            *string
	Price         *decimal.Decimal
	SalePrice     *decimal.Decimal
	SKU           *string
	StockQuantity *int
	Images        []string
	Available     *bool
}

// Ptr returns a pointer to v. Handy for building override patches.
func Ptr[T any](v T) *T {
	return &v
}

// IsEmpty reports whether no field is set
func (o Override) IsEmpty() bool {
	return len(o.Fields()) == 0
}

// Fields lists the fields that are set, in declaration order
func (o Override) Fields() []Field {
	fields := make([]Field, 0, 7)
	if o.ID != nil {
		fields = append(fields, FieldID)
	}
	if o.Price != nil {
		fields = append(fields, FieldPrice)
	}
	if o.SalePrice != nil {
		fields = append(fields, FieldSalePrice)
	}
	if o.SKU != nil {
		fields = append(fields, FieldSKU)
	}
	if o.StockQuantity != nil {
		fields = append(fields, FieldStockQuantity)
	}
	if o.Images != nil {
		fields = append(fields, FieldImages)
	}
	if o.Available != nil {
		fields = append(fields, FieldAvailable)
	}
	return fields
}

// Merge returns o with every field set in patch replacing the current one
func (o Override) Merge(patch Override) Override {
	out := o.Clone()
	if patch.ID != nil {
		out.ID = Ptr(*patch.ID)
	}
	if patch.Price != nil {
		out.Price = Ptr(*patch.Price)
	}
	if patch.SalePrice != nil {
		out.SalePrice = Ptr(*patch.SalePrice)
	}
	if patch.SKU != nil {
		out.SKU = Ptr(*patch.SKU)
	}
	if patch.StockQuantity != nil {
		out.StockQuantity = Ptr(*patch.StockQuantity)
	}
	if patch.Images != nil {
		out.Images = append([]string{}, patch.Images...)
	}
	if patch.Available != nil {
		out.Available = Ptr(*patch.Available)
	}
	return out
}

// Without returns o with the given fields reset to unset
func (o Override) Without(fields ...Field) Override {
	out := o.Clone()
	for _, f := range fields {
		switch f {
		case FieldID:
			out.ID = nil
		case FieldPrice:
			out.Price = nil
		case FieldSalePrice:
			out.SalePrice = nil
		case FieldSKU:
			out.SKU = nil
		case FieldStockQuantity:
			out.StockQuantity = nil
		case FieldImages:
			out.Images = nil
		case FieldAvailable:
			out.Available = nil
		}
	}
	return out
}

// Clone returns a deep copy so callers can never alias stored data
func (o Override) Clone() Override {
	var out Override
	if o.ID != nil {
		out.ID = Ptr(*o.ID)
	}
	if o.Price != nil {
		out.Price = Ptr(*o.Price)
	}
	if o.SalePrice != nil {
		out.SalePrice = Ptr(*o.SalePrice)
	}
	if o.SKU != nil {
		out.SKU = Ptr(*o.SKU)
	}
	if o.StockQuantity != nil {
		out.StockQuantity = Ptr(*o.StockQuantity)
	}
	if o.Images != nil {
		out.Images = append([]string{}, o.Images...)
	}
	if o.Available != nil {
		out.Available = Ptr(*o.Available)
	}
	return out
}
