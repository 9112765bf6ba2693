package variant

import (
	"github.com/erp/variants/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeConfigurator = "VariantConfigurator"

// Event type constants
const (
	EventTypeValueSelected      = "variant.value_selected"
	EventTypeValueDeselected    = "variant.value_deselected"
	EventTypeOverrideChanged    = "variant.override_changed"
	EventTypePricingModeChanged = "variant.pricing_mode_changed"
)

// ValueSelectedEvent is raised when a value is added to a dimension
type ValueSelectedEvent struct {
	shared.BaseDomainEvent
	Dimension Dimension `json:"dimension"`
	Value     string    `json:"value"`
}

// NewValueSelectedEvent creates a new ValueSelectedEvent
func NewValueSelectedEvent(c *Configurator, dim Dimension, value string) *ValueSelectedEvent {
	return &ValueSelectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeValueSelected, AggregateTypeConfigurator, c.ID),
		Dimension:       dim,
		Value:           value,
	}
}

// ValueDeselectedEvent is raised when a value is removed from a dimension.
// Cascaded lists the override identities deleted along with it.
type ValueDeselectedEvent struct {
	shared.BaseDomainEvent
	Dimension Dimension  `json:"dimension"`
	Value     string     `json:"value"`
	Cascaded  []Identity `json:"cascaded"`
}

// NewValueDeselectedEvent creates a new ValueDeselectedEvent
func NewValueDeselectedEvent(c *Configurator, dim Dimension, value string, cascaded []Identity) *ValueDeselectedEvent {
	return &ValueDeselectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeValueDeselected, AggregateTypeConfigurator, c.ID),
		Dimension:       dim,
		Value:           value,
		Cascaded:        cascaded,
	}
}

// OverrideChangedEvent is raised when per-variant fields are set or cleared
type OverrideChangedEvent struct {
	shared.BaseDomainEvent
	Identity Identity `json:"identity"`
	Fields   []Field  `json:"fields"`
	Cleared  bool     `json:"cleared"`
}

// NewOverrideChangedEvent creates a new OverrideChangedEvent
func NewOverrideChangedEvent(c *Configurator, id Identity, fields []Field, cleared bool) *OverrideChangedEvent {
	return &OverrideChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOverrideChanged, AggregateTypeConfigurator, c.ID),
		Identity:        id,
		Fields:          fields,
		Cleared:         cleared,
	}
}

// PricingModeChangedEvent is raised when the pricing mode or uniform price changes
type PricingModeChangedEvent struct {
	shared.BaseDomainEvent
	OldMode      PricingMode     `json:"old_mode"`
	NewMode      PricingMode     `json:"new_mode"`
	UniformPrice decimal.Decimal `json:"uniform_price"`
}

// NewPricingModeChangedEvent creates a new PricingModeChangedEvent
func NewPricingModeChangedEvent(c *Configurator, oldMode PricingMode) *PricingModeChangedEvent {
	return &PricingModeChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePricingModeChanged, AggregateTypeConfigurator, c.ID),
		OldMode:         oldMode,
		NewMode:         c.pricing.Mode,
		UniformPrice:    c.pricing.UniformPrice,
	}
}
