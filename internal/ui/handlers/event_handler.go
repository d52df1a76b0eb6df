package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"icsselect/internal/eventbus"
	"icsselect/internal/session"
	"icsselect/internal/ui/state"
)

// ClearStatusMsg clears the status line once a flash message has been shown
type ClearStatusMsg struct {
	Message string
}

const statusTTL = 3 * time.Second

// EventHandler turns domain events forwarded from the bus into status updates
type EventHandler struct {
	state   *state.AppState
	session *session.Session
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, sess *session.Session) *EventHandler {
	return &EventHandler{
		state:   appState,
		session: sess,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CalendarLoadedEvent:
		return h.flash(fmt.Sprintf("Loaded %d events from %s", e.EventCount, filepath.Base(e.Path)), false)

	case eventbus.SelectionChangedEvent:
		if len(e.Indices) != 1 {
			return nil
		}
		store := h.session.Store()
		if store == nil {
			return nil
		}
		ev, ok := store.Get(e.Indices[0])
		if !ok {
			return nil
		}
		verb := "Deselected"
		if e.Selected {
			verb = "Selected"
		}
		return h.flash(fmt.Sprintf("%s %q", verb, ev.Name), false)

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		h.state.SetStatus("Error: "+msg, true)

	case eventbus.LoadFailedEvent:
		log.Printf("load failed for %s: %v", e.Path, e.Err)
	}

	return nil
}

// flash shows msg and schedules it to be cleared
func (h *EventHandler) flash(msg string, isError bool) tea.Cmd {
	h.state.SetStatus(msg, isError)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{Message: msg}
	})
}
