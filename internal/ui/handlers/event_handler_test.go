package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icsselect/internal/eventbus"
	"icsselect/internal/session"
	"icsselect/internal/ui/state"
)

const calendarText = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\nUID:a\r\nDTSTAMP:20160801T120000Z\r\nDTSTART:20160801T090000Z\r\nSUMMARY:Standup\r\nEND:VEVENT\r\n" +
	"BEGIN:VEVENT\r\nUID:b\r\nDTSTAMP:20160801T120000Z\r\nDTSTART:20160802T090000Z\r\nSUMMARY:Review\r\nEND:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func loadedSession(t *testing.T) *session.Session {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team.ics")
	require.NoError(t, os.WriteFile(path, []byte(calendarText), 0644))
	sess := session.New(nil, 20, "_selection")
	require.NoError(t, sess.Load(path))
	return sess
}

func TestCalendarLoadedFlashesStatus(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, loadedSession(t))

	cmd := h.HandleEvent(eventbus.CalendarLoadedEvent{Path: "/x/team.ics", EventCount: 2, PageCount: 1})
	require.NotNil(t, cmd)
	assert.Equal(t, "Loaded 2 events from team.ics", st.StatusMessage)
	assert.False(t, st.StatusIsError)
}

func TestSingleToggleNamesTheEvent(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, loadedSession(t))

	cmd := h.HandleEvent(eventbus.SelectionChangedEvent{Indices: []int{1}, Selected: false, Total: 1})
	require.NotNil(t, cmd)
	assert.Equal(t, `Deselected "Review"`, st.StatusMessage)

	// page-wide changes are reported by the command itself
	st.SetStatus("", false)
	assert.Nil(t, h.HandleEvent(eventbus.SelectionChangedEvent{Indices: []int{0, 1}, Selected: true, Total: 2}))
	assert.Empty(t, st.StatusMessage)
}

func TestErrorEventSetsErrorStatus(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, session.New(nil, 20, "_selection"))

	h.HandleEvent(eventbus.ErrorEvent{Message: "export failed"})
	assert.Equal(t, "Error: export failed", st.StatusMessage)
	assert.True(t, st.StatusIsError)
}

func TestSelectionEventBeforeLoadIsIgnored(t *testing.T) {
	st := state.NewAppState()
	h := NewEventHandler(st, session.New(nil, 20, "_selection"))

	assert.Nil(t, h.HandleEvent(eventbus.SelectionChangedEvent{Indices: []int{0}}))
	assert.Empty(t, st.StatusMessage)
}
