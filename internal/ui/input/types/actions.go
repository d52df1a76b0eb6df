package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

// Page actions
type PageAction struct {
	Direction string // "next", "prev", "first", "last"
}

func (a PageAction) Type() string { return "page" }

// SelectAction toggles the event under the cursor
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

// SelectAllAction selects every event on the visible page
type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

// DeselectAllAction clears every event on the visible page
type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// HelpPagerAction opens the full help in the pager
type HelpPagerAction struct{}

func (a HelpPagerAction) Type() string { return "help_pager" }

// PreviewAction shows the serialized selection in the pager
type PreviewAction struct{}

func (a PreviewAction) Type() string { return "preview" }

type SaveAction struct{}

func (a SaveAction) Type() string { return "save" }

type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
