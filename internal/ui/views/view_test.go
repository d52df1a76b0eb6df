package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"icsselect/internal/domain"
)

func sampleRows() []EventRow {
	begin := time.Date(2016, 8, 1, 9, 0, 0, 0, time.UTC)
	return []EventRow{
		{Number: 1, Selected: true, Event: domain.Event{Name: "Standup", Begin: begin, End: begin.Add(15 * time.Minute)}},
		{Number: 2, Selected: false, Event: domain.Event{Name: "Planning\nsession", Begin: begin.Add(time.Hour), End: begin.Add(2 * time.Hour)}},
	}
}

func reviewState() ViewState {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "page %d of %d"
	p.PerPage = 2
	p.SetTotalPages(5)
	p.Page = 1

	return ViewState{
		Width:        120,
		Height:       40,
		FileName:     "team.ics",
		Total:        5,
		Selected:     3,
		PageSelected: 1,
		Page:         1,
		PageCount:    3,
		Rows:         sampleRows(),
		Paginator:    p,
	}
}

func TestRenderReview(t *testing.T) {
	r := NewRenderer("2006-01-02 15:04", true, false)
	out := ansi.Strip(r.Render(reviewState()))

	assert.Contains(t, out, "ICS Event Selector (5 events in total)")
	assert.Contains(t, out, "team.ics")
	assert.Contains(t, out, " 1 ")
	assert.Contains(t, out, " 3 ")
	assert.Contains(t, out, "page 2 of 3")
	assert.Contains(t, out, "selected 3 of 5")
	assert.Contains(t, out, "1 of 2 on this page")
	assert.Contains(t, out, "2016-08-01 09:00")
	assert.Contains(t, out, "Created")
	assert.NotContains(t, out, "Location")
	assert.Contains(t, out, "Planning session", "descriptions are flattened to one line")
	assert.Equal(t, 1, strings.Count(out, "✓"))
}

func TestRenderPickerShowsStatus(t *testing.T) {
	r := NewRenderer("2006-01-02 15:04", true, false)
	out := ansi.Strip(r.Render(ViewState{
		Width:            100,
		Height:           30,
		Picking:          true,
		PickerView:       "  cal.ics",
		CurrentDirectory: "/tmp/work",
		StatusMessage:    "notes.txt is not a calendar file",
		StatusIsError:    true,
	}))

	assert.Contains(t, out, "Open a calendar file")
	assert.Contains(t, out, "/tmp/work")
	assert.Contains(t, out, "cal.ics")
	assert.Contains(t, out, "notes.txt is not a calendar file")
}

func TestPopupOverlayKeepsBackgroundText(t *testing.T) {
	r := NewRenderer("2006-01-02 15:04", true, false)
	vs := reviewState()
	vs.PopupKind = PopupWarning
	vs.PopupTitle = "Cannot open calendar"
	vs.PopupBody = "empty.ics does not contain any events."

	out := ansi.Strip(r.Render(vs))
	assert.Contains(t, out, "Cannot open calendar")
	assert.Contains(t, out, "empty.ics does not contain any events.")
	assert.Contains(t, out, "ICS Event Selector (5 events in total)")

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), vs.Width)
	}
}

func TestHelpContentNamesCommands(t *testing.T) {
	out := ansi.Strip(HelpContent("_picked"))
	for _, want := range []string{"Select All", "Clear All", "Save Selected", "Quit without saving", "<name>_picked"} {
		assert.Contains(t, out, want)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, "a b c", clip("a\n b\t c", 20))
	assert.Equal(t, "abcd…", clip("abcdefgh", 5))
}
