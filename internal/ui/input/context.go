package input

import (
	"icsselect/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

func (c *ModelContext) PageRows() int {
	return c.State.PageRows
}

func (c *ModelContext) CurrentPage() int {
	return c.State.Page
}

func (c *ModelContext) PageCount() int {
	return c.State.PageCount
}
