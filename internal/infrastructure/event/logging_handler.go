package event

import (
	"context"

	"github.com/erp/variants/internal/domain/shared"
	"go.uber.org/zap"
)

// LoggingHandler writes one debug entry per event
type LoggingHandler struct {
	logger *zap.Logger
}

// NewLoggingHandler creates a LoggingHandler
func NewLoggingHandler(logger *zap.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger.Named("events")}
}

// Handle logs the event
func (h *LoggingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.logger.Debug("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns nil, subscribing to every event
func (h *LoggingHandler) EventTypes() []string {
	return nil
}
