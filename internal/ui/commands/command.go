package commands

import (
	"fmt"
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"icsselect/internal/domain"
	"icsselect/internal/session"
	"icsselect/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Session *session.Session
}

// ToggleSelectionCommand flips the checkbox of one event
type ToggleSelectionCommand struct {
	ctx   *CommandContext
	index int
}

func NewToggleSelectionCommand(ctx *CommandContext, index int) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{
		ctx:   ctx,
		index: index,
	}
}

// Execute toggles the selection
func (c *ToggleSelectionCommand) Execute() tea.Cmd {
	if err := c.ctx.Session.Toggle(c.index); err != nil {
		log.Printf("toggle %d: %v", c.index, err)
		c.ctx.State.SetStatus(err.Error(), true)
	}
	return nil
}

// SetPageSelectionCommand selects or clears every event on the visible page
type SetPageSelectionCommand struct {
	ctx   *CommandContext
	value bool
}

func NewSetPageSelectionCommand(ctx *CommandContext, value bool) *SetPageSelectionCommand {
	return &SetPageSelectionCommand{
		ctx:   ctx,
		value: value,
	}
}

// Execute applies the value to the current page only
func (c *SetPageSelectionCommand) Execute() tea.Cmd {
	page := c.ctx.State.Page
	if err := c.ctx.Session.SetPage(page, c.value); err != nil {
		log.Printf("set page %d to %v: %v", page, c.value, err)
		c.ctx.State.SetStatus(err.Error(), true)
		return nil
	}
	verb := "Cleared"
	if c.value {
		verb = "Selected"
	}
	c.ctx.State.SetStatus(fmt.Sprintf("%s all events on page %d", verb, page+1), false)
	return nil
}

// SaveCommand writes the selected events and reports the outcome in a popup
type SaveCommand struct {
	ctx *CommandContext
}

func NewSaveCommand(ctx *CommandContext) *SaveCommand {
	return &SaveCommand{ctx: ctx}
}

// Execute performs the export
func (c *SaveCommand) Execute() tea.Cmd {
	out, n, err := c.ctx.Session.Save()
	if err != nil {
		log.Printf("save failed: %v", err)
		c.ctx.State.ShowPopup(state.PopupSaveError, "Could not save",
			fmt.Sprintf("Writing %s failed:\n%v\n\nPress any key to go back.", out, err))
		return nil
	}
	total := c.ctx.State.Total
	c.ctx.State.ShowPopup(state.PopupSaved, "Saved",
		fmt.Sprintf("%d of %d events saved to\n%s\n\nPress any key to exit.", n, total, out))
	return nil
}

// DiscardCommand ends the review without writing anything
type DiscardCommand struct {
	ctx *CommandContext
}

func NewDiscardCommand(ctx *CommandContext) *DiscardCommand {
	return &DiscardCommand{ctx: ctx}
}

// Execute discards the session and quits
func (c *DiscardCommand) Execute() tea.Cmd {
	if c.ctx.Session.State() == domain.StateReviewing {
		if err := c.ctx.Session.Discard(); err != nil {
			log.Printf("discard: %v", err)
		}
	}
	return tea.Quit
}

// LoadCommand opens a calendar picked in the file picker
type LoadCommand struct {
	ctx  *CommandContext
	path string
}

func NewLoadCommand(ctx *CommandContext, path string) *LoadCommand {
	return &LoadCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute loads the file, or opens a warning naming it
func (c *LoadCommand) Execute() tea.Cmd {
	name := filepath.Base(c.path)
	if err := c.ctx.Session.Load(c.path); err != nil {
		c.ctx.State.Reset()
		c.ctx.State.ShowPopup(state.PopupLoadError, "Cannot open calendar", loadErrorBody(name, err))
		return nil
	}
	c.ctx.State.SetPages(name, c.ctx.Session.Store().Len(), c.ctx.Session.Pages())
	c.ctx.State.SetStatus("", false)
	return nil
}
