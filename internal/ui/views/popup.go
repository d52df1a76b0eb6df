package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
	grey   lipgloss.Style
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
		grey:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// RenderPopupOverlay centres the styled popup over a greyed-out copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max(0, (width-modalW)/2)
	y := max(0, (height-modalH)/2)

	base := strings.Split(ansi.Strip(mainContent), "\n")
	for len(base) < y+modalH {
		base = append(base, "")
	}

	out := make([]string, len(base))
	for i, line := range base {
		out[i] = pr.grey.Render(line)
	}

	for i, popupLine := range strings.Split(styledPopup, "\n") {
		row := base[y+i]
		left := ansi.Truncate(row, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(row, x+ansi.StringWidth(popupLine), "")
		out[y+i] = pr.grey.Render(left) + popupLine + pr.grey.Render(right)
	}

	return strings.Join(out, "\n")
}

// RenderPopup lays out a titled popup body
func (pr *PopupRenderer) RenderPopup(title, body string) string {
	if title == "" {
		return body
	}
	return pr.styles.PopupTitle.Render(title) + "\n" + body
}
