// Package session ties a loaded calendar to its selection flags and pages
// and tracks the Unloaded → Loaded → Reviewing → Saved/Discarded lifecycle.
package session

import (
	"errors"
	"fmt"
	"log"

	"icsselect/internal/calendar"
	"icsselect/internal/domain"
	"icsselect/internal/eventbus"
	"icsselect/internal/logic"
	"icsselect/internal/ui/services/selection"
)

// ErrNotReviewing is returned by operations that need a loaded calendar
var ErrNotReviewing = errors.New("no calendar under review")

// TransitionError reports a lifecycle change that is not allowed
type TransitionError struct {
	From domain.SessionState
	To   domain.SessionState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid session transition %s -> %s", e.From, e.To)
}

var transitions = map[domain.SessionState][]domain.SessionState{
	domain.StateUnloaded:  {domain.StateLoaded},
	domain.StateLoaded:    {domain.StateReviewing},
	domain.StateReviewing: {domain.StateSaved, domain.StateDiscarded},
}

// Session owns everything created at load time. A failed load leaves it
// Unloaded with nothing retained.
type Session struct {
	bus      eventbus.EventBus
	exporter *calendar.Exporter
	pageSize int

	state     domain.SessionState
	doc       *calendar.Document
	store     *logic.MemoryEventStore
	selection *selection.Service
	pages     []domain.Page
	savedTo   string
}

// New creates an Unloaded session
func New(bus eventbus.EventBus, pageSize int, outputSuffix string) *Session {
	return &Session{
		bus:      bus,
		exporter: calendar.NewExporter(outputSuffix),
		pageSize: pageSize,
		state:    domain.StateUnloaded,
	}
}

// Load parses path and, on success, moves the session to Reviewing. Parse,
// empty-input and read failures keep the session Unloaded.
func (s *Session) Load(path string) error {
	if s.state != domain.StateUnloaded {
		return &TransitionError{From: s.state, To: domain.StateLoaded}
	}

	doc, err := calendar.LoadFile(path)
	if err != nil {
		log.Printf("load %s failed: %v", path, err)
		s.publish(eventbus.LoadFailedEvent{Path: path, Err: err})
		return err
	}

	pages, err := logic.Pages(len(doc.Events), s.pageSize)
	if err != nil {
		s.publish(eventbus.LoadFailedEvent{Path: path, Err: err})
		return err
	}

	s.doc = doc
	s.store = logic.NewMemoryEventStore(doc.Events)
	s.selection = selection.NewService(s.bus, len(doc.Events))
	s.pages = pages

	if err := s.transition(domain.StateLoaded); err != nil {
		return err
	}
	s.publish(eventbus.CalendarLoadedEvent{
		Path:       path,
		EventCount: s.store.Len(),
		PageCount:  len(pages),
	})
	return s.transition(domain.StateReviewing)
}

// Toggle flips the flag of one event
func (s *Session) Toggle(index int) error {
	if s.state != domain.StateReviewing {
		return ErrNotReviewing
	}
	return s.selection.Toggle(index)
}

// SetPage sets every flag on page number to value
func (s *Session) SetPage(number int, value bool) error {
	if s.state != domain.StateReviewing {
		return ErrNotReviewing
	}
	page, ok := s.Page(number)
	if !ok {
		return &selection.IndexError{Index: number, Len: len(s.pages)}
	}
	return s.selection.SetAll(page, value)
}

// Preview renders the current selection without writing it
func (s *Session) Preview() (string, int, error) {
	if s.state != domain.StateReviewing {
		return "", 0, ErrNotReviewing
	}
	text, n := s.exporter.Render(s.doc, s.selection)
	return text, n, nil
}

// Save writes the selection next to the input file and ends the session.
// On failure the session stays in Reviewing so the user can retry.
func (s *Session) Save() (string, int, error) {
	if s.state != domain.StateReviewing {
		return "", 0, ErrNotReviewing
	}

	out, n, err := s.exporter.Export(s.doc, s.selection)
	if err != nil {
		s.publish(eventbus.ErrorEvent{Message: "export failed", Err: err})
		return out, 0, err
	}

	s.savedTo = out
	s.publish(eventbus.ExportCompletedEvent{Path: out, Exported: n, Total: s.store.Len()})
	return out, n, s.transition(domain.StateSaved)
}

// Discard ends the session without writing anything
func (s *Session) Discard() error {
	return s.transition(domain.StateDiscarded)
}

// State returns the lifecycle state
func (s *Session) State() domain.SessionState {
	return s.state
}

// Path returns the input file path, or "" before a successful load
func (s *Session) Path() string {
	if s.doc == nil {
		return ""
	}
	return s.doc.Path
}

// OutputPath returns where Save writes
func (s *Session) OutputPath() string {
	if s.doc == nil {
		return ""
	}
	return s.exporter.OutputPath(s.doc.Path)
}

// SavedTo returns the file written by a successful Save
func (s *Session) SavedTo() string {
	return s.savedTo
}

// Store returns the loaded events, nil before load
func (s *Session) Store() logic.EventStore {
	if s.store == nil {
		return nil
	}
	return s.store
}

// Selection returns the flag service, nil before load
func (s *Session) Selection() *selection.Service {
	return s.selection
}

// Pages returns the page ranges in order
func (s *Session) Pages() []domain.Page {
	return append([]domain.Page(nil), s.pages...)
}

// Page returns page number, if it exists
func (s *Session) Page(number int) (domain.Page, bool) {
	if number < 0 || number >= len(s.pages) {
		return domain.Page{}, false
	}
	return s.pages[number], true
}

// PageCount returns the number of pages
func (s *Session) PageCount() int {
	return len(s.pages)
}

func (s *Session) transition(to domain.SessionState) error {
	for _, allowed := range transitions[s.state] {
		if allowed == to {
			from := s.state
			s.state = to
			log.Printf("session %s -> %s", from, to)
			s.publish(eventbus.SessionChangedEvent{From: from, To: to})
			return nil
		}
	}
	return &TransitionError{From: s.state, To: to}
}

func (s *Session) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
