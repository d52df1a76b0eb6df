package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"icsselect/internal/ui/input/types"
)

// PopupMode handles keys while a modal dialog is open. Any key dismisses it.
type PopupMode struct{}

func NewPopupMode() *PopupMode {
	return &PopupMode{}
}

func (m *PopupMode) Name() string {
	return "popup"
}

func (m *PopupMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PopupMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PopupMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "ctrl+c" {
		return []types.Action{types.QuitAction{}}, true
	}
	return []types.Action{types.DismissAction{}}, true
}
