package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	FileName      lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	TableBorder   lipgloss.Style
	TableHeader   lipgloss.Style
	Cell          lipgloss.Style
	CursorRow     lipgloss.Style
	Unselected    lipgloss.Style
	Check         lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	WarningBox    lipgloss.Style
	ErrorBox      lipgloss.Style
	SuccessBox    lipgloss.Style
	InfoBox       lipgloss.Style
	PopupTitle    lipgloss.Style
}

func box(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(1, 2)
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		FileName: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")),
		TableBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		TableHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		Cell:          lipgloss.NewStyle().Padding(0, 1),
		CursorRow:     lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")),
		Unselected:    lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		Check:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		WarningBox:    box("214"),
		ErrorBox:      box("203"),
		SuccessBox:    box("78"),
		InfoBox:       box("99"),
		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
	}
}
