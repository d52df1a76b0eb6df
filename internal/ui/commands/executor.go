package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"icsselect/internal/session"
	"icsselect/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, sess *session.Session) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:   state,
			Session: sess,
		},
	}
}

func (e *Executor) ExecuteLoad(path string) tea.Cmd {
	return NewLoadCommand(e.ctx, path).Execute()
}

func (e *Executor) ExecuteToggleSelection(index int) tea.Cmd {
	return NewToggleSelectionCommand(e.ctx, index).Execute()
}

func (e *Executor) ExecuteSetPageSelection(value bool) tea.Cmd {
	return NewSetPageSelectionCommand(e.ctx, value).Execute()
}

func (e *Executor) ExecuteSave() tea.Cmd {
	return NewSaveCommand(e.ctx).Execute()
}

func (e *Executor) ExecuteDiscard() tea.Cmd {
	return NewDiscardCommand(e.ctx).Execute()
}
