package variant

import (
	"github.com/erp/variants/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ChangeFunc receives every recomputed variant list together with the
// selected colors and sizes. It is called synchronously.
type ChangeFunc func(records []Record, colors, sizes []string)

// Projection is the result of one recomputation
type Projection struct {
	Records    []Record
	Dimensions []AttributeDimension
}

// Selected returns the selection of a dimension at projection time
func (p Projection) Selected(d Dimension) []string {
	for _, dim := range p.Dimensions {
		if dim.Name == d {
			return append([]string{}, dim.SelectedValues...)
		}
	}
	return []string{}
}

// Colors returns the selected colors
func (p Projection) Colors() []string {
	return p.Selected(DimensionColor)
}

// Sizes returns the selected sizes
func (p Projection) Sizes() []string {
	return p.Selected(DimensionSize)
}

// SavedVariant is a previously persisted variant used to open the editor in edit mode
type SavedVariant struct {
	ID            string
	Attributes    map[Dimension]string
	Price         decimal.Decimal
	SalePrice     *decimal.Decimal
	SKU           string
	StockQuantity int
	Images        []string
	Available     bool
}

// Configurator owns the selection registry, the override store and the pricing
// mode of one product editing session, and projects them into variant records.
//
// Every mutating method recomputes and notifies the ChangeFunc before returning
// when it changed state. Recompute itself never mutates.
type Configurator struct {
	shared.BaseAggregateRoot
	registry  *Registry
	store     *OverrideStore
	pricing   Pricing
	basePrice decimal.Decimal
	baseSKU   string
	onChange  ChangeFunc
}

var _ shared.EventSource = (*Configurator)(nil)

// Option configures a Configurator
type Option func(*Configurator)

// WithDimensions replaces the default color/size dimensions
func WithDimensions(names ...Dimension) Option {
	return func(c *Configurator) {
		c.registry = NewRegistry(names...)
	}
}

// WithOnChange sets the change callback
func WithOnChange(fn ChangeFunc) Option {
	return func(c *Configurator) {
		c.onChange = fn
	}
}

// WithPricing sets the initial pricing mode. Invalid modes are ignored.
func WithPricing(mode PricingMode, uniformPrice decimal.Decimal) Option {
	return func(c *Configurator) {
		if mode.IsValid() {
			c.pricing = Pricing{Mode: mode, UniformPrice: uniformPrice}
		}
	}
}

// NewConfigurator creates an empty configurator.
// Pricing starts uniform at the base price unless WithPricing says otherwise.
func NewConfigurator(basePrice decimal.Decimal, baseSKU string, opts ...Option) *Configurator {
	c := &Configurator{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		store:             NewOverrideStore(),
		pricing:           Pricing{Mode: PricingUniform, UniformPrice: basePrice},
		basePrice:         basePrice,
		baseSKU:           baseSKU,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = NewRegistry()
	}
	return c
}

// Hydrate seeds selections and overrides from saved variants.
//
// Values are selected per dimension in first-seen order, empty ones skipped.
// Each saved variant's fields become the override of its combination; an empty
// saved ID or SKU leaves the derived one in place. A uniform configurator
// adopts the shared saved price when all saved prices agree, otherwise it
// switches to per-variant pricing so no saved price is hidden. A configurator
// already in per-variant mode stays there.
func (c *Configurator) Hydrate(saved []SavedVariant) {
	if len(saved) == 0 {
		return
	}

	for _, dim := range c.registry.Dimensions() {
		for _, v := range saved {
			c.registry.AddValue(dim, v.Attributes[dim])
		}
	}

	dims := c.registry.Dimensions()
	uniform := true
	for i, v := range saved {
		values := make(Combination, len(dims))
		for pos, dim := range dims {
			values[pos] = v.Attributes[dim]
		}
		patch := Override{
			Price:         Ptr(v.Price),
			StockQuantity: Ptr(v.StockQuantity),
			Images:        append([]string{}, v.Images...),
			Available:     Ptr(v.Available),
		}
		if v.ID != "" {
			patch.ID = Ptr(v.ID)
		}
		if v.SKU != "" {
			patch.SKU = Ptr(v.SKU)
		}
		if v.SalePrice != nil {
			patch.SalePrice = Ptr(*v.SalePrice)
		}
		c.store.Set(values.Identity(), patch)

		if i > 0 && !v.Price.Equal(saved[0].Price) {
			uniform = false
		}
	}

	switch {
	case c.pricing.Mode == PricingPerVariant:
	case uniform:
		c.pricing.UniformPrice = saved[0].Price
	default:
		c.pricing.Mode = PricingPerVariant
	}

	c.changed()
}

// SelectValue adds a value to a dimension
func (c *Configurator) SelectValue(dim Dimension, value string) bool {
	if !c.registry.AddValue(dim, value) {
		return false
	}
	c.AddDomainEvent(NewValueSelectedEvent(c, dim, value))
	c.changed()
	return true
}

// DeselectValue removes a value from a dimension and deletes every override
// whose combination used it
func (c *Configurator) DeselectValue(dim Dimension, value string) bool {
	pos, ok := c.registry.Position(dim)
	if !ok || !c.registry.RemoveValue(dim, value) {
		return false
	}
	cascaded := c.store.DeleteWhere(pos, value)
	c.AddDomainEvent(NewValueDeselectedEvent(c, dim, value, cascaded))
	c.changed()
	return true
}

// SetOverride merges patch into the override stored for id
func (c *Configurator) SetOverride(id Identity, patch Override) {
	c.store.Set(id, patch)
	c.AddDomainEvent(NewOverrideChangedEvent(c, id, patch.Fields(), false))
	c.changed()
}

// SetOverrideFor is SetOverride keyed by the combination itself
func (c *Configurator) SetOverrideFor(values Combination, patch Override) {
	c.SetOverride(values.Identity(), patch)
}

// ClearOverrideFields resets fields of a stored override to their defaults
func (c *Configurator) ClearOverrideFields(id Identity, fields ...Field) bool {
	if !c.store.Unset(id, fields...) {
		return false
	}
	c.AddDomainEvent(NewOverrideChangedEvent(c, id, fields, true))
	c.changed()
	return true
}

// SetPricingMode switches pricing mode. Stored per-variant prices are kept in
// both modes. Unknown modes are ignored.
func (c *Configurator) SetPricingMode(mode PricingMode, uniformPrice decimal.Decimal) bool {
	if !mode.IsValid() {
		return false
	}
	if c.pricing.Mode == mode && c.pricing.UniformPrice.Equal(uniformPrice) {
		return false
	}
	old := c.pricing.Mode
	c.pricing = Pricing{Mode: mode, UniformPrice: uniformPrice}
	c.AddDomainEvent(NewPricingModeChangedEvent(c, old))
	c.changed()
	return true
}

// SetBase updates the base price and base SKU used for defaults
func (c *Configurator) SetBase(price decimal.Decimal, sku string) {
	if c.basePrice.Equal(price) && c.baseSKU == sku {
		return
	}
	c.basePrice = price
	c.baseSKU = sku
	c.changed()
}

// Recompute builds the full variant list from the current state
func (c *Configurator) Recompute() Projection {
	dims := c.registry.Snapshot()
	names := c.registry.Dimensions()
	combos := Generate(dims)

	records := make([]Record, 0, len(combos))
	for _, combo := range combos {
		id := combo.Identity()
		records = append(records, c.project(names, combo, id, c.store.Get(id)))
	}

	return Projection{Records: records, Dimensions: dims}
}

func (c *Configurator) project(names []Dimension, combo Combination, id Identity, o Override) Record {
	derived := DeriveSKU(c.baseSKU, combo...)

	attrs := make([]Attribute, len(combo))
	for i, v := range combo {
		attrs[i] = Attribute{Dimension: names[i], Value: v}
	}

	r := Record{
		Identity:   id,
		ID:         derived,
		Attributes: attrs,
		Price:      c.pricing.Resolve(o, c.basePrice),
		SKU:        derived,
		Images:     []string{},
		Available:  true,
	}
	if o.ID != nil {
		r.ID = *o.ID
	}
	if o.SKU != nil {
		r.SKU = *o.SKU
	}
	if o.SalePrice != nil {
		r.SalePrice = Ptr(*o.SalePrice)
	}
	if o.StockQuantity != nil {
		r.StockQuantity = *o.StockQuantity
	}
	if o.Images != nil {
		r.Images = append([]string{}, o.Images...)
	}
	if o.Available != nil {
		r.Available = *o.Available
	}
	return r
}

func (c *Configurator) changed() {
	c.MarkChanged()
	if c.onChange == nil {
		return
	}
	p := c.Recompute()
	c.onChange(p.Records, p.Colors(), p.Sizes())
}

// Override returns the stored override for id, empty if none
func (c *Configurator) Override(id Identity) Override {
	return c.store.Get(id)
}

// HasOverride reports whether an override entry exists for id
func (c *Configurator) HasOverride(id Identity) bool {
	return c.store.Has(id)
}

// OverrideCount returns the number of stored overrides
func (c *Configurator) OverrideCount() int {
	return c.store.Len()
}

// Selected returns the selection of a dimension
func (c *Configurator) Selected(dim Dimension) []string {
	return c.registry.Selected(dim)
}

// Dimensions returns the registered dimensions in combination order
func (c *Configurator) Dimensions() []Dimension {
	return c.registry.Dimensions()
}

// HasDimension reports whether dim is registered
func (c *Configurator) HasDimension(dim Dimension) bool {
	return c.registry.Has(dim)
}

// CombinationCount returns how many variants the current selection describes
func (c *Configurator) CombinationCount() int {
	return CountCombinations(c.registry.Snapshot())
}

// Pricing returns the current pricing mode and uniform price
func (c *Configurator) Pricing() Pricing {
	return c.pricing
}

// BasePrice returns the base price
func (c *Configurator) BasePrice() decimal.Decimal {
	return c.basePrice
}

// BaseSKU returns the base SKU
func (c *Configurator) BaseSKU() string {
	return c.baseSKU
}

// Combination builds a combination from per-dimension values in registry order.
// Dimensions missing from values get "".
func (c *Configurator) Combination(values map[Dimension]string) Combination {
	dims := c.registry.Dimensions()
	combo := make(Combination, len(dims))
	for i, d := range dims {
		combo[i] = values[d]
	}
	return combo
}
