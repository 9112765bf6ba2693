package event

import (
	"context"
	"fmt"
	"time"

	"github.com/erp/variants/internal/domain/shared"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisStreamHandler forwards variant events to a Redis stream so other
// services (catalog, search indexing) can follow editor activity
type RedisStreamHandler struct {
	client     *redis.Client
	serializer *EventSerializer
	stream     string
	maxLen     int64
	logger     *zap.Logger
}

// NewRedisStreamHandler connects to Redis and returns a handler writing to stream
func NewRedisStreamHandler(cfg RedisConfig, serializer *EventSerializer, stream string, maxLen int64, logger *zap.Logger) (*RedisStreamHandler, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStreamHandlerWithClient(client, serializer, stream, maxLen, logger), nil
}

// NewRedisStreamHandlerWithClient creates a handler with an existing Redis client
func NewRedisStreamHandlerWithClient(client *redis.Client, serializer *EventSerializer, stream string, maxLen int64, logger *zap.Logger) *RedisStreamHandler {
	if stream == "" {
		stream = "variants:events"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStreamHandler{
		client:     client,
		serializer: serializer,
		stream:     stream,
		maxLen:     maxLen,
		logger:     logger.Named("redis_stream"),
	}
}

// Handle appends the event to the stream, trimming it to roughly maxLen entries
func (h *RedisStreamHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	values, err := h.streamValues(event)
	if err != nil {
		return err
	}

	args := &redis.XAddArgs{
		Stream: h.stream,
		Values: values,
	}
	if h.maxLen > 0 {
		args.MaxLen = h.maxLen
		args.Approx = true
	}

	id, err := h.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("failed to append %s to stream %s: %w", event.EventType(), h.stream, err)
	}

	h.logger.Debug("Event appended to stream",
		zap.String("stream", h.stream),
		zap.String("entry_id", id),
		zap.String("event_type", event.EventType()),
	)
	return nil
}

// EventTypes returns the variant event types
func (h *RedisStreamHandler) EventTypes() []string {
	return VariantEventTypes()
}

// Stream returns the stream key
func (h *RedisStreamHandler) Stream() string {
	return h.stream
}

// Close closes the Redis client
func (h *RedisStreamHandler) Close() error {
	return h.client.Close()
}

func (h *RedisStreamHandler) streamValues(event shared.DomainEvent) (map[string]any, error) {
	payload, err := h.serializer.Serialize(event)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"event_id":     event.EventID().String(),
		"event_type":   event.EventType(),
		"aggregate_id": event.AggregateID().String(),
		"occurred_at":  event.OccurredAt().UTC().Format(time.RFC3339Nano),
		"payload":      string(payload),
	}, nil
}
