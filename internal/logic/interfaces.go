package logic

import "icsselect/internal/domain"

// EventStore provides read-only access to the loaded events in store order
type EventStore interface {
	Len() int
	Get(index int) (domain.Event, bool)
	Slice(page domain.Page) []domain.Event
	All() []domain.Event
}
