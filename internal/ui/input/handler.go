package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"icsselect/internal/ui/input/modes"
	"icsselect/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New(keys types.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModePicker,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModePicker] = modes.NewPickerMode()
	h.modes[types.ModeReview] = modes.NewReviewMode(keys)
	h.modes[types.ModePopup] = modes.NewPopupMode()

	return h
}

// HandleKey returns the actions for msg. consumed is false when the current
// mode has no use for the key, so the caller may forward it elsewhere.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil, false
	}
	return actions, true
}

// ChangeMode switches mode outside of key handling, e.g. after a load result
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		actions = append(actions, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModePicker
	}
	return h.currentMode
}
