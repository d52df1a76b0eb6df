package logic

import (
	"icsselect/internal/domain"
)

// MemoryEventStore is an in-memory EventStore. It is filled once and never
// mutated afterwards, so it needs no locking.
type MemoryEventStore struct {
	events []domain.Event
}

// NewMemoryEventStore creates a store over a copy of events, keeping their order
func NewMemoryEventStore(events []domain.Event) *MemoryEventStore {
	return &MemoryEventStore{
		events: append([]domain.Event(nil), events...),
	}
}

func (s *MemoryEventStore) Len() int {
	return len(s.events)
}

func (s *MemoryEventStore) Get(index int) (domain.Event, bool) {
	if index < 0 || index >= len(s.events) {
		return domain.Event{}, false
	}
	return s.events[index], true
}

// Slice returns the events covered by page, clamped to the store bounds
func (s *MemoryEventStore) Slice(page domain.Page) []domain.Event {
	start, end := page.Start, page.End
	if start < 0 {
		start = 0
	}
	if end > len(s.events) {
		end = len(s.events)
	}
	if start >= end {
		return nil
	}
	return append([]domain.Event(nil), s.events[start:end]...)
}

// All returns a copy of every event in store order
func (s *MemoryEventStore) All() []domain.Event {
	return append([]domain.Event(nil), s.events...)
}
