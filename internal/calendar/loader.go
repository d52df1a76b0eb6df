package calendar

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/dustin/go-humanize"

	"icsselect/internal/domain"
)

// Document is a parsed calendar file: its events in store order plus the
// source calendar, which the exporter uses as the template for the output.
type Document struct {
	Path     string
	Calendar *ics.Calendar
	Events   []domain.Event
}

// LoadFile reads and parses the calendar at path
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, &IOError{Path: path, Op: "read", Err: err}
	}

	return Parse(path, body)
}

// Parse turns calendar text into a Document whose events are sorted
// ascending by creation time. A blank body or a calendar without VEVENTs is
// an EmptyInputError; anything the parser rejects is a ParseError.
func Parse(path string, body []byte) (*Document, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &EmptyInputError{Path: path}
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		log.Printf("ics parse failed for %s: %v", path, err)
		return nil, &ParseError{Path: path, Err: err}
	}
	if cal == nil {
		return nil, &ParseError{Path: path, Err: errors.New("no calendar found")}
	}

	vevents := cal.Events()
	if len(vevents) == 0 {
		return nil, &EmptyInputError{Path: path}
	}

	events := make([]domain.Event, 0, len(vevents))
	for _, ve := range vevents {
		events = append(events, toEvent(ve))
	}
	SortByCreated(events)

	log.Printf("ics parse completed for %s: %d events from %s", path, len(events), humanize.Bytes(uint64(len(body))))
	return &Document{Path: path, Calendar: cal, Events: events}, nil
}

// SortByCreated orders events ascending by Created. Ties keep input order.
func SortByCreated(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Created.Before(events[j].Created)
	})
}

func toEvent(ve *ics.VEvent) domain.Event {
	ev := domain.Event{Source: ve}

	if p := ve.GetProperty(ics.ComponentPropertyUniqueId); p != nil {
		ev.UID = p.Value
	}
	if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
		ev.Name = p.Value
	}
	if p := ve.GetProperty(ics.ComponentPropertyLocation); p != nil {
		ev.Location = p.Value
	}

	// Time zone semantics are not validated; unparsable values stay zero.
	if t, err := ve.GetStartAt(); err == nil {
		ev.Begin = t
	}
	if t, err := ve.GetEndAt(); err == nil {
		ev.End = t
	}
	if p := ve.GetProperty(ics.ComponentPropertyCreated); p != nil {
		if t, err := parseICSTime(p.Value); err == nil {
			ev.Created = t
		}
	}

	return ev
}

// parseICSTime parses the basic DATE and DATE-TIME forms
func parseICSTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}

	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, time.Local)
	}
	return time.ParseInLocation("20060102", v, time.Local)
}
