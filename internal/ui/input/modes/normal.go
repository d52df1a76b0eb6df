package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"icsselect/internal/ui/input/types"
)

// ReviewMode handles keys while the event checklist is shown
type ReviewMode struct {
	keys types.KeyMap
}

func NewReviewMode(keys types.KeyMap) *ReviewMode {
	return &ReviewMode{keys: keys}
}

func (m *ReviewMode) Name() string {
	return "review"
}

func (m *ReviewMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ReviewMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ReviewMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Save):
		return []types.Action{types.SaveAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PrevPage):
		if ctx.CurrentPage() == 0 {
			return nil, true
		}
		return []types.Action{types.PageAction{Direction: "prev"}}, true

	case key.Matches(msg, m.keys.NextPage):
		if ctx.CurrentPage() >= ctx.PageCount()-1 {
			return nil, true
		}
		return []types.Action{types.PageAction{Direction: "next"}}, true

	case key.Matches(msg, m.keys.FirstPage):
		return []types.Action{types.PageAction{Direction: "first"}}, true

	case key.Matches(msg, m.keys.LastPage):
		return []types.Action{types.PageAction{Direction: "last"}}, true

	case key.Matches(msg, m.keys.Toggle):
		if ctx.PageRows() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectAction{}}, true

	case key.Matches(msg, m.keys.SelectAll):
		return []types.Action{types.SelectAllAction{}}, true

	case key.Matches(msg, m.keys.ClearAll):
		return []types.Action{types.DeselectAllAction{}}, true

	case key.Matches(msg, m.keys.Preview):
		return []types.Action{types.PreviewAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.HelpPagerAction{}}, true
	}

	return nil, false
}
