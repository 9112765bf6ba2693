package event

import (
	"maps"
	"slices"

	"github.com/erp/variants/internal/domain/shared"
	"github.com/erp/variants/internal/domain/variant"
)

var variantEvents = map[string]EventFactory{
	variant.EventTypeValueSelected:      func() shared.DomainEvent { return &variant.ValueSelectedEvent{} },
	variant.EventTypeValueDeselected:    func() shared.DomainEvent { return &variant.ValueDeselectedEvent{} },
	variant.EventTypeOverrideChanged:    func() shared.DomainEvent { return &variant.OverrideChangedEvent{} },
	variant.EventTypePricingModeChanged: func() shared.DomainEvent { return &variant.PricingModeChangedEvent{} },
}

// RegisterVariantEvents makes every configurator event decodable by serializer
func RegisterVariantEvents(serializer *EventSerializer) {
	for eventType, factory := range variantEvents {
		serializer.Register(eventType, factory)
	}
}

// VariantEventTypes lists every configurator event type in sorted order
func VariantEventTypes() []string {
	return slices.Sorted(maps.Keys(variantEvents))
}
