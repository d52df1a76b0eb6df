package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginTop(1)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Width(12)
	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

type helpEntry struct{ keys, desc string }

type helpSection struct {
	name    string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Selection", []helpEntry{
		{"Space, x", "Toggle the event under the cursor"},
		{"a", "Select All: tick every event on this page"},
		{"c", "Clear All: untick every event on this page"},
	}},
	{"Navigation", []helpEntry{
		{"↑/↓, j/k", "Move between events"},
		{"←/→, h/l", "Previous/next page (also Tab, Shift+Tab)"},
		{"Home/End", "First/last page"},
	}},
	{"File", []helpEntry{
		{"s, Ctrl+S", "Save Selected: write the ticked events and exit"},
		{"v", "Preview the output in a pager"},
		{"q, Ctrl+C", "Quit without saving"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"H", "Open this help in a pager"},
	}},
}

// HelpContent renders the help text shown in the help popup and in the pager
func HelpContent(outputSuffix string) string {
	var help strings.Builder

	help.WriteString(helpTitleStyle.Render("ICS Event Selector Help"))
	help.WriteString("\n\n")
	help.WriteString(helpDescStyle.Render(fmt.Sprintf(
		"Pick a calendar file, untick the events you do not want\nand save the rest as <name>%s next to the original.", outputSuffix)))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(helpSectionStyle.Render(section.name))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString("  ")
			help.WriteString(helpKeyStyle.Render(e.keys))
			help.WriteString(helpDescStyle.Render(e.desc))
			help.WriteString("\n")
		}
	}

	return strings.TrimRight(help.String(), "\n")
}
