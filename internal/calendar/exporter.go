package calendar

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/dustin/go-humanize"

	"icsselect/internal/domain"
)

// Selector reports whether the event at a store index is included
type Selector interface {
	IsSelected(index int) bool
}

// Flags is a Selector backed by a plain slice
type Flags []bool

func (f Flags) IsSelected(index int) bool {
	return index >= 0 && index < len(f) && f[index]
}

// Exporter writes the selected subset of a Document next to its source
type Exporter struct {
	suffix string
}

// NewExporter creates an exporter naming outputs <stem><suffix><ext>
func NewExporter(suffix string) *Exporter {
	return &Exporter{suffix: suffix}
}

// OutputPath returns the destination for input
func (x *Exporter) OutputPath(input string) string {
	return OutputPath(input, x.suffix)
}

// Render serializes the selected events of doc and returns the text and the
// number of events it contains
func (x *Exporter) Render(doc *Document, sel Selector) (string, int) {
	selected := Filter(doc.Events, sel)
	return Serialize(doc.Calendar, selected), len(selected)
}

// Export renders the selection and writes it to OutputPath(doc.Path),
// overwriting any existing file
func (x *Exporter) Export(doc *Document, sel Selector) (string, int, error) {
	text, n := x.Render(doc, sel)
	out := x.OutputPath(doc.Path)
	if err := WriteFile(out, text); err != nil {
		return out, 0, err
	}
	log.Printf("exported %d of %d events to %s (%s)", n, len(doc.Events), out, humanize.Bytes(uint64(len(text))))
	return out, n, nil
}

// OutputPath builds <dir>/<stem><suffix><ext> for input
func OutputPath(input, suffix string) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+suffix+ext)
}

// Filter returns the events whose flag is set, preserving store order
func Filter(events []domain.Event, sel Selector) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for i, ev := range events {
		if sel.IsSelected(i) {
			out = append(out, ev)
		}
	}
	return out
}

// Serialize builds a calendar holding events. Calendar-level properties and
// non-event components (VTIMEZONE and friends) are copied from template so
// TZID references in the events still resolve.
func Serialize(template *ics.Calendar, events []domain.Event) string {
	cal := ics.NewCalendar()
	if template != nil {
		if len(template.CalendarProperties) > 0 {
			cal.CalendarProperties = append([]ics.CalendarProperty(nil), template.CalendarProperties...)
		}
		for _, c := range template.Components {
			if _, isEvent := c.(*ics.VEvent); isEvent {
				continue
			}
			cal.Components = append(cal.Components, c)
		}
	}

	for _, ev := range events {
		cal.AddVEvent(toVEvent(ev))
	}

	return cal.Serialize()
}

// toVEvent returns the parsed source component, or builds one for events
// that were not loaded from a file
func toVEvent(ev domain.Event) *ics.VEvent {
	if ev.Source != nil {
		return ev.Source
	}

	ve := ics.NewEvent(ev.UID)
	if !ev.Begin.IsZero() {
		ve.SetStartAt(ev.Begin)
	}
	if !ev.End.IsZero() {
		ve.SetEndAt(ev.End)
	}
	if !ev.Created.IsZero() {
		ve.SetCreatedTime(ev.Created)
	}
	if ev.Name != "" {
		ve.SetSummary(ev.Name)
	}
	if ev.Location != "" {
		ve.SetLocation(ev.Location)
	}
	return ve
}

// WriteFile writes text to path, truncating an existing file. The handle is
// always released, and a failed close is reported like a failed write.
func WriteFile(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Op: "create", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Path: path, Op: "close", Err: cerr}
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return &IOError{Path: path, Op: "write", Err: err}
	}
	return nil
}
