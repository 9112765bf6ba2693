package event

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/erp/variants/internal/domain/shared"
)

// EventFactory returns a zero event ready to be decoded into
type EventFactory func() shared.DomainEvent

// EventSerializer encodes domain events as JSON and decodes them back into
// concrete types looked up by event type
type EventSerializer struct {
	mu        sync.RWMutex
	factories map[string]EventFactory
}

// NewEventSerializer creates a serializer with no registered types
func NewEventSerializer() *EventSerializer {
	return &EventSerializer{factories: make(map[string]EventFactory)}
}

// Register binds eventType to factory, replacing any earlier binding
func (s *EventSerializer) Register(eventType string, factory EventFactory) {
	s.mu.Lock()
	s.factories[eventType] = factory
	s.mu.Unlock()
}

// Serialize encodes a domain event as JSON
func (s *EventSerializer) Serialize(e shared.DomainEvent) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.EventType(), err)
	}
	return data, nil
}

// Deserialize decodes data into a fresh event of the registered eventType
func (s *EventSerializer) Deserialize(eventType string, data []byte) (shared.DomainEvent, error) {
	s.mu.RLock()
	factory := s.factories[eventType]
	s.mu.RUnlock()
	if factory == nil {
		return nil, fmt.Errorf("event type %q is not registered", eventType)
	}

	e := factory()
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", eventType, err)
	}
	return e, nil
}

// IsRegistered reports whether eventType can be decoded
func (s *EventSerializer) IsRegistered(eventType string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.factories[eventType] != nil
}

// RegisteredTypes returns the decodable event types in sorted order
func (s *EventSerializer) RegisteredTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.factories))
}
