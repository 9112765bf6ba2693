package event

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/erp/variants/internal/domain/shared"
	"github.com/google/uuid"
)

// JournalEntry is one recorded event in wire form
type JournalEntry struct {
	EventID     uuid.UUID       `json:"event_id"`
	EventType   string          `json:"event_type"`
	AggregateID uuid.UUID       `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// Journal keeps the most recent events, serialized, in a fixed-size ring
type Journal struct {
	mu         sync.RWMutex
	serializer *EventSerializer
	entries    []JournalEntry
	next       int
	full       bool
}

// NewJournal creates a journal holding at most capacity entries
func NewJournal(serializer *EventSerializer, capacity int) *Journal {
	if capacity <= 0 {
		capacity = 256
	}
	return &Journal{
		serializer: serializer,
		entries:    make([]JournalEntry, capacity),
	}
}

// Handle records the event, evicting the oldest entry when full
func (j *Journal) Handle(ctx context.Context, event shared.DomainEvent) error {
	payload, err := j.serializer.Serialize(event)
	if err != nil {
		return err
	}
	entry := JournalEntry{
		EventID:     event.EventID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt(),
		Payload:     payload,
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries[j.next] = entry
	j.next = (j.next + 1) % len(j.entries)
	if j.next == 0 {
		j.full = true
	}
	return nil
}

// EventTypes returns the variant event types
func (j *Journal) EventTypes() []string {
	return VariantEventTypes()
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (j *Journal) Recent(limit int) []JournalEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	size := j.next
	if j.full {
		size = len(j.entries)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]JournalEntry, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (j.next - i + len(j.entries)) % len(j.entries)
		out = append(out, j.entries[idx])
	}
	return out
}

// Replay decodes the recorded entries back into domain events, oldest first
func (j *Journal) Replay() ([]shared.DomainEvent, error) {
	entries := j.Recent(0)
	events := make([]shared.DomainEvent, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e, err := j.serializer.Deserialize(entries[i].EventType, entries[i].Payload)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// Len returns the number of recorded entries
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.full {
		return len(j.entries)
	}
	return j.next
}
