package event

import (
	"context"
	"testing"

	"github.com/erp/variants/internal/domain/variant"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestJournal(capacity int) *Journal {
	serializer := NewEventSerializer()
	RegisterVariantEvents(serializer)
	return NewJournal(serializer, capacity)
}

func TestJournal_RecordsThroughBus(t *testing.T) {
	bus := startedBus(t)
	journal := newTestJournal(10)
	bus.Subscribe(journal)

	c := variant.NewConfigurator(decimal.NewFromInt(100), "SKU")
	c.SelectValue(variant.DimensionColor, "Red")
	c.SelectValue(variant.DimensionColor, "Blue")
	require.NoError(t, bus.Publish(context.Background(), c.PullDomainEvents()...))

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("unrelated")))

	recent := journal.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, variant.EventTypeValueSelected, recent[0].EventType)
	assert.Contains(t, string(recent[0].Payload), `"value":"Blue"`)
	assert.Contains(t, string(recent[1].Payload), `"value":"Red"`)
	assert.Equal(t, c.ID, recent[0].AggregateID)
}

func TestJournal_Ring(t *testing.T) {
	journal := newTestJournal(2)
	c := variant.NewConfigurator(decimal.NewFromInt(100), "SKU")
	for _, color := range []string{"Red", "Blue", "Green"} {
		c.SelectValue(variant.DimensionColor, color)
	}
	for _, e := range c.PullDomainEvents() {
		require.NoError(t, journal.Handle(context.Background(), e))
	}

	assert.Equal(t, 2, journal.Len())
	recent := journal.Recent(1)
	require.Len(t, recent, 1)
	assert.Contains(t, string(recent[0].Payload), "Green")

	events, err := journal.Replay()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Blue", events[0].(*variant.ValueSelectedEvent).Value)
	assert.Equal(t, "Green", events[1].(*variant.ValueSelectedEvent).Value)
}

func TestJournal_Empty(t *testing.T) {
	journal := newTestJournal(0)
	assert.Empty(t, journal.Recent(5))
	assert.Equal(t, 0, journal.Len())
}

func TestLoggingHandler(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	handler := NewLoggingHandler(zap.New(core))

	event := newTestEvent("variant.value_selected")
	require.NoError(t, handler.Handle(context.Background(), event))
	assert.Nil(t, handler.EventTypes())

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "events", entries[0].LoggerName)
	assert.Equal(t, "variant.value_selected", entries[0].ContextMap()["event_type"])
}
