package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventSource is anything that buffers domain events until they are pulled
type EventSource interface {
	PullDomainEvents() []DomainEvent
}

// BaseAggregateRoot carries identity, a mutation counter and pending events
// for an in-memory aggregate. It is not persisted, so there is no optimistic
// locking; Version only counts applied mutations.
type BaseAggregateRoot struct {
	ID        uuid.UUID
	Version   int
	OpenedAt  time.Time
	ChangedAt time.Time

	domainEvents []DomainEvent
}

// NewBaseAggregateRoot creates an aggregate root with a fresh ID at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	now := time.Now()
	return BaseAggregateRoot{
		ID:        uuid.New(),
		Version:   1,
		OpenedAt:  now,
		ChangedAt: now,
	}
}

// GetVersion returns the aggregate version
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// MarkChanged records one applied mutation
func (a *BaseAggregateRoot) MarkChanged() {
	a.Version++
	a.ChangedAt = time.Now()
}

// AddDomainEvent buffers an event until the next pull
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// PendingEvents returns the number of buffered events
func (a *BaseAggregateRoot) PendingEvents() int {
	return len(a.domainEvents)
}

// ClearDomainEvents drops buffered events without publishing them
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// PullDomainEvents returns the buffered events and clears them
func (a *BaseAggregateRoot) PullDomainEvents() []DomainEvent {
	events := a.domainEvents
	a.domainEvents = nil
	return events
}
