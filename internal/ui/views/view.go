package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupKind mirrors the modal dialog variants the renderer knows how to frame
type PopupKind int

const (
	PopupNone PopupKind = iota
	PopupWarning
	PopupError
	PopupSuccess
	PopupHelp
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Picker
	Picking          bool
	PickerView       string
	CurrentDirectory string

	// Review
	FileName      string
	Total         int
	Selected      int
	PageSelected  int
	Page          int
	PageCount     int
	Rows          []EventRow
	Cursor        int
	Paginator     paginator.Model
	StatusMessage string
	StatusIsError bool

	// Popups
	PopupKind   PopupKind
	PopupTitle  string
	PopupBody   string
	HelpContent string

	HelpModel help.Model
	KeyMap    help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	eventRender *EventRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(timeFormat string, showCreated, showLocation bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		eventRender: NewEventRenderer(styles, timeFormat, showCreated, showLocation),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	height := state.Height
	if height <= 0 {
		height = 24
	}

	var content string
	if state.Picking {
		content = r.renderPicker(state)
	} else {
		content = r.renderReview(state, width)
	}

	mainStyle := r.styles.Main.MaxHeight(height)
	finalContent := mainStyle.Render(content)

	switch state.PopupKind {
	case PopupWarning:
		return r.overlay(finalContent, state.PopupTitle, state.PopupBody, height, width, r.styles.WarningBox)
	case PopupError:
		return r.overlay(finalContent, state.PopupTitle, state.PopupBody, height, width, r.styles.ErrorBox)
	case PopupSuccess:
		return r.overlay(finalContent, state.PopupTitle, state.PopupBody, height, width, r.styles.SuccessBox)
	case PopupHelp:
		return r.overlay(finalContent, "", state.HelpContent, height, width, r.styles.InfoBox)
	}

	return finalContent
}

func (r *Renderer) overlay(main, title, body string, height, width int, style lipgloss.Style) string {
	return r.popupRender.RenderPopupOverlay(main, r.popupRender.RenderPopup(title, body), height, width, style)
}

func (r *Renderer) renderPicker(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("ICS Event Selector"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Open a calendar file: enter to open, q to quit, ? for help"))
	b.WriteString("\n\n")
	b.WriteString(r.styles.FileName.Render(state.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(state.PickerView)
	if state.StatusMessage != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.StatusError.Render(state.StatusMessage))
	}
	return b.String()
}

func (r *Renderer) renderReview(state ViewState, width int) string {
	var b strings.Builder
	inner := width - 4 // main container padding

	title := r.styles.Title.Render(fmt.Sprintf("ICS Event Selector (%d events in total)", state.Total))
	b.WriteString(title)
	b.WriteString("  ")
	b.WriteString(r.styles.FileName.Render(state.FileName))
	b.WriteString("\n\n")

	b.WriteString(ansi.Truncate(r.renderTabs(state.Page, state.PageCount), inner, "…"))
	b.WriteString("\n")

	b.WriteString(r.eventRender.RenderTable(state.Rows, state.Cursor, inner))
	b.WriteString("\n")

	status := fmt.Sprintf("%s  •  selected %d of %d  •  %d of %d on this page",
		state.Paginator.View(), state.Selected, state.Total, state.PageSelected, len(state.Rows))
	b.WriteString(r.styles.Status.Render(status))
	b.WriteString("\n")

	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		b.WriteString(style.Render(state.StatusMessage))
	}
	b.WriteString("\n")

	if state.KeyMap != nil {
		b.WriteString(r.styles.Help.Render(state.HelpModel.View(state.KeyMap)))
	}

	return b.String()
}

// renderTabs draws one " n " tab per page with the active one highlighted
func (r *Renderer) renderTabs(active, count int) string {
	tabs := make([]string, count)
	for i := range count {
		label := fmt.Sprintf(" %d ", i+1)
		if i == active {
			tabs[i] = r.styles.TabActive.Render(label)
		} else {
			tabs[i] = r.styles.TabInactive.Render(label)
		}
	}
	return strings.Join(tabs, " ")
}
