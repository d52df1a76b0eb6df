package domain

import (
	"time"

	ics "github.com/arran4/golang-ical"
)

// Event represents a single calendar event loaded from an ICS file
type Event struct {
	UID      string
	Name     string // SUMMARY
	Location string
	Begin    time.Time
	End      time.Time
	Created  time.Time

	// Source is the parsed VEVENT; the exporter writes it back untouched
	Source *ics.VEvent
}

// Page is a half-open index range [Start, End) over the event store
type Page struct {
	Number int // zero-based
	Start  int
	End    int
}

// Len returns the number of events on the page
func (p Page) Len() int {
	return p.End - p.Start
}

// Contains reports whether index falls inside the page
func (p Page) Contains(index int) bool {
	return index >= p.Start && index < p.End
}

// SessionState is the lifecycle state of a review session
type SessionState int

const (
	StateUnloaded SessionState = iota
	StateLoaded
	StateReviewing
	StateSaved
	StateDiscarded
)

func (s SessionState) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateReviewing:
		return "reviewing"
	case StateSaved:
		return "saved"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended
func (s SessionState) Terminal() bool {
	return s == StateSaved || s == StateDiscarded
}
