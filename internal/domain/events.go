package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCalendarLoaded   EventType = "CalendarLoaded"
	EventLoadFailed       EventType = "LoadFailed"
	EventSessionChanged   EventType = "SessionChanged"
	EventSelectionChanged EventType = "SelectionChanged"
	EventExportCompleted  EventType = "ExportCompleted"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CalendarLoadedEvent is emitted after a calendar file was parsed successfully
type CalendarLoadedEvent struct {
	Path       string
	EventCount int
	PageCount  int
}

func (e CalendarLoadedEvent) Type() EventType { return EventCalendarLoaded }

// LoadFailedEvent is emitted when a calendar file could not be loaded
type LoadFailedEvent struct {
	Path string
	Err  error
}

func (e LoadFailedEvent) Type() EventType { return EventLoadFailed }

// SessionChangedEvent is emitted on every session state transition
type SessionChangedEvent struct {
	From SessionState
	To   SessionState
}

func (e SessionChangedEvent) Type() EventType { return EventSessionChanged }

// SelectionChangedEvent is emitted when inclusion flags change
type SelectionChangedEvent struct {
	Indices  []int // affected event indices
	Selected bool  // new value of the affected flags
	Total    int   // number of selected events after the change
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ExportCompletedEvent is emitted after the selection was written
type ExportCompletedEvent struct {
	Path     string
	Exported int
	Total    int
}

func (e ExportCompletedEvent) Type() EventType { return EventExportCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	PageSize int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
