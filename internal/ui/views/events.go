package views

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"icsselect/internal/domain"
)

// EventRow is one checklist row on the visible page
type EventRow struct {
	Number   int // 1-based within the page
	Selected bool
	Event    domain.Event
}

// EventRenderer renders the checklist table of one page
type EventRenderer struct {
	styles       *Styles
	timeFormat   string
	showCreated  bool
	showLocation bool
}

func NewEventRenderer(styles *Styles, timeFormat string, showCreated, showLocation bool) *EventRenderer {
	return &EventRenderer{
		styles:       styles,
		timeFormat:   timeFormat,
		showCreated:  showCreated,
		showLocation: showLocation,
	}
}

// RenderTable renders rows as a table, highlighting the cursor row
func (r *EventRenderer) RenderTable(rows []EventRow, cursor int, width int) string {
	headers := []string{"", "#", "Begin", "End"}
	if r.showCreated {
		headers = append(headers, "Created")
	}
	if r.showLocation {
		headers = append(headers, "Location")
	}
	headers = append(headers, "Description")

	// everything but the description column has a fixed width
	fixed := 2 + 3 + 2*(len(r.timeFormat)+2) + 8
	if r.showCreated {
		fixed += len(r.timeFormat) + 2
	}
	if r.showLocation {
		fixed += 22
	}
	descWidth := max(10, width-fixed)

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		mark := " "
		if row.Selected {
			mark = "✓"
		}
		cells := []string{
			mark,
			strconv.Itoa(row.Number),
			r.formatTime(row.Event.Begin),
			r.formatTime(row.Event.End),
		}
		if r.showCreated {
			cells = append(cells, r.formatTime(row.Event.Created))
		}
		if r.showLocation {
			cells = append(cells, clip(row.Event.Location, 20))
		}
		cells = append(cells, clip(row.Event.Name, descWidth))
		data = append(data, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.TableBorder).
		BorderColumn(false).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.TableHeader
			case row == cursor:
				return r.styles.CursorRow
			case row < len(rows) && !rows[row].Selected:
				return r.styles.Unselected
			case col == 0:
				return r.styles.Cell.Inherit(r.styles.Check)
			default:
				return r.styles.Cell
			}
		})

	return t.String()
}

func (r *EventRenderer) formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(r.timeFormat)
}

// clip flattens s to one line no wider than n cells
func clip(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	return ansi.Truncate(s, n, "…")
}
