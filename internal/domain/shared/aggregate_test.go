package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleEvent struct {
	BaseDomainEvent
}

func TestBaseAggregateRoot(t *testing.T) {
	root := NewBaseAggregateRoot()
	require.NotEqual(t, uuid.Nil, root.ID)
	assert.Equal(t, 1, root.GetVersion())
	assert.Equal(t, root.OpenedAt, root.ChangedAt)

	root.AddDomainEvent(&sampleEvent{NewBaseDomainEvent("sample.created", "Sample", root.ID)})
	root.AddDomainEvent(&sampleEvent{NewBaseDomainEvent("sample.changed", "Sample", root.ID)})
	root.MarkChanged()

	assert.Equal(t, 2, root.GetVersion())
	assert.False(t, root.ChangedAt.Before(root.OpenedAt))
	assert.Equal(t, 2, root.PendingEvents())

	events := root.PullDomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "sample.created", events[0].EventType())
	assert.Equal(t, root.ID, events[1].AggregateID())
	assert.Equal(t, "Sample", events[1].AggregateType())
	assert.Zero(t, root.PendingEvents())
	assert.Empty(t, root.PullDomainEvents())
}

func TestBaseAggregateRoot_ClearDomainEvents(t *testing.T) {
	root := NewBaseAggregateRoot()
	root.AddDomainEvent(&sampleEvent{NewBaseDomainEvent("sample.created", "Sample", root.ID)})
	root.ClearDomainEvents()
	assert.Zero(t, root.PendingEvents())
}

func TestNopPublisher(t *testing.T) {
	var p EventPublisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), &sampleEvent{}))
}
