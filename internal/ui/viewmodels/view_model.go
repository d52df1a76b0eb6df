package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"

	"icsselect/internal/config"
	"icsselect/internal/session"
	"icsselect/internal/ui/state"
	"icsselect/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state   *state.AppState
	session *session.Session
	config  *config.Config
	width   int
	height  int
	help    help.Model
	keys    help.KeyMap
	pager   paginator.Model
	picking bool
	picker  string
	dir     string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, sess *session.Session, cfg *config.Config) *ViewModel {
	p := paginator.New()
	p.Type = paginator.Arabic
	p.ArabicFormat = "page %d of %d"
	p.PerPage = cfg.PageSize

	return &ViewModel{
		state:   appState,
		session: sess,
		config:  cfg,
		help:    help.New(),
		pager:   p,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

func (vm *ViewModel) SetKeyMap(keys help.KeyMap) {
	vm.keys = keys
}

// SetPicker records the file picker output while no calendar is loaded
func (vm *ViewModel) SetPicker(picking bool, view, dir string) {
	vm.picking = picking
	vm.picker = view
	vm.dir = dir
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Picking:          vm.picking,
		PickerView:       vm.picker,
		CurrentDirectory: vm.dir,
		FileName:         vm.state.FileName,
		Total:            vm.state.Total,
		Page:             vm.state.Page,
		PageCount:        vm.state.PageCount,
		Cursor:           vm.state.Cursor,
		StatusMessage:    vm.state.StatusMessage,
		StatusIsError:    vm.state.StatusIsError,
		HelpModel:        vm.help,
		KeyMap:           vm.keys,
	}

	switch vm.state.Popup.Kind {
	case state.PopupLoadError:
		vs.PopupKind = views.PopupWarning
	case state.PopupSaveError:
		vs.PopupKind = views.PopupError
	case state.PopupSaved:
		vs.PopupKind = views.PopupSuccess
	case state.PopupHelp:
		vs.PopupKind = views.PopupHelp
		vs.HelpContent = views.HelpContent(vm.config.OutputSuffix)
	}
	vs.PopupTitle = vm.state.Popup.Title
	vs.PopupBody = vm.state.Popup.Body

	vm.pager.SetTotalPages(vm.state.Total)
	vm.pager.Page = vm.state.Page
	vs.Paginator = vm.pager

	store := vm.session.Store()
	sel := vm.session.Selection()
	page, ok := vm.state.CurrentPage()
	if store == nil || sel == nil || !ok {
		return vs
	}

	vs.Selected = sel.Count()
	vs.PageSelected = sel.CountIn(page)
	for i, ev := range store.Slice(page) {
		vs.Rows = append(vs.Rows, views.EventRow{
			Number:   i + 1,
			Selected: sel.IsSelected(page.Start + i),
			Event:    ev,
		})
	}
	return vs
}
