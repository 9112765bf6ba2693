package variant

import (
	"context"

	"github.com/erp/variants/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// eventTypes collects the event types of every Publish call in order
func (m *MockEventPublisher) eventTypes() []string {
	var types []string
	for _, call := range m.Calls {
		if call.Method != "Publish" {
			continue
		}
		for _, e := range call.Arguments.Get(1).([]shared.DomainEvent) {
			types = append(types, e.EventType())
		}
	}
	return types
}
