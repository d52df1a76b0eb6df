package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"icsselect/internal/config"
	"icsselect/internal/domain"
	"icsselect/internal/eventbus"
	"icsselect/internal/session"
	"icsselect/internal/ui/commands"
	"icsselect/internal/ui/handlers"
	"icsselect/internal/ui/input"
	inputtypes "icsselect/internal/ui/input/types"
	"icsselect/internal/ui/state"
	"icsselect/internal/ui/viewmodels"
	"icsselect/internal/ui/views"
)

// lines the picker screen spends on its own header and status
const pickerChrome = 4

// first line of the help page in the pager; the help popup never shows it
const helpPagerCaption = "Keyboard reference (q closes the pager)"

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   *state.AppState
	session *session.Session

	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	picker       filepicker.Model
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The file picker starts in startDir.
func NewModel(bus eventbus.EventBus, cfg *config.Config, startDir string) *Model {
	appState := state.NewAppState()
	sess := session.New(bus, cfg.PageSize, cfg.OutputSuffix)
	keys := inputtypes.DefaultKeyMap()

	fp := filepicker.New()
	fp.CurrentDirectory = startDir
	fp.AllowedTypes = pickerExtensions(cfg.AllowedExtensions)
	fp.DirAllowed = false
	fp.FileAllowed = true

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		session:      sess,
		picker:       fp,
		renderer:     views.NewRenderer(cfg.TimeFormat, cfg.UISettings.ShowCreated, cfg.UISettings.ShowLocation),
		eventHandler: handlers.NewEventHandler(appState, sess),
		cmdExecutor:  commands.NewExecutor(appState, sess),
		inputHandler: input.New(keys),
		pager:        NewPagerOps(nil),
	}

	m.viewModel = viewmodels.NewViewModel(appState, sess, cfg)
	m.viewModel.SetKeyMap(keys)

	return m
}

// pickerExtensions accepts both cases of every configured extension
func pickerExtensions(exts []string) []string {
	out := make([]string, 0, len(exts)*2)
	for _, ext := range exts {
		out = append(out, strings.ToLower(ext))
		if up := strings.ToUpper(ext); up != strings.ToLower(ext) {
			out = append(out, up)
		}
	}
	return out
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// SavedTo returns the output file written before exit, or "" when nothing was saved
func (m *Model) SavedTo() string {
	return m.session.SavedTo()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, m.updatePicker(tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - pickerChrome})

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions, consumed := m.inputHandler.HandleKey(msg, ctx)
		if !consumed {
			if m.inputHandler.CurrentMode() == inputtypes.ModePicker {
				return m, m.updatePicker(msg)
			}
			return m, nil
		}

		cmds := []tea.Cmd{}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	picking := m.session.State() == domain.StateUnloaded
	pickerView := ""
	if picking {
		pickerView = m.picker.View()
	}
	m.viewModel.SetPicker(picking, pickerView, m.picker.CurrentDirectory)

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// updatePicker forwards msg to the file picker and loads the file it selects
func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		log.Printf("picked %s", path)
		loadCmd := m.cmdExecutor.ExecuteLoad(path)
		m.syncMode()
		return tea.Batch(cmd, loadCmd)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.state.SetStatus(fmt.Sprintf("%s is not a calendar file", filepath.Base(path)), true)
	}
	return cmd
}

// syncMode puts the input handler in the mode that matches popups and session state
func (m *Model) syncMode() {
	ctx := &input.ModelContext{State: m.state}
	switch {
	case m.state.HasPopup():
		m.inputHandler.ChangeMode(inputtypes.ModePopup, ctx)
	case m.session.State() == domain.StateReviewing:
		m.inputHandler.ChangeMode(inputtypes.ModeReview, ctx)
	default:
		m.inputHandler.ChangeMode(inputtypes.ModePicker, ctx)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveCursor(-1)
		case "down":
			m.state.MoveCursor(1)
		}

	case inputtypes.PageAction:
		switch a.Direction {
		case "prev":
			m.state.SetPage(m.state.Page - 1)
		case "next":
			m.state.SetPage(m.state.Page + 1)
		case "first":
			m.state.SetPage(0)
		case "last":
			m.state.SetPage(m.state.PageCount - 1)
		}

	case inputtypes.SelectAction:
		index := m.state.CurrentIndex()
		if index < 0 {
			return nil
		}
		return m.cmdExecutor.ExecuteToggleSelection(index)

	case inputtypes.SelectAllAction:
		return m.cmdExecutor.ExecuteSetPageSelection(true)

	case inputtypes.DeselectAllAction:
		return m.cmdExecutor.ExecuteSetPageSelection(false)

	case inputtypes.ToggleHelpAction:
		m.state.ShowPopup(state.PopupHelp, "", "")
		m.syncMode()

	case inputtypes.HelpPagerAction:
		if m.program == nil {
			m.state.ShowPopup(state.PopupHelp, "", "")
			m.syncMode()
			return nil
		}
		return m.showInPager("help", helpPagerCaption, views.HelpContent(m.config.OutputSuffix))

	case inputtypes.PreviewAction:
		text, n, err := m.session.Preview()
		if err != nil {
			m.state.SetStatus(err.Error(), true)
			return nil
		}
		if m.program == nil {
			m.state.SetStatus(fmt.Sprintf("Preview: %d of %d events selected", n, m.state.Total), false)
			return nil
		}
		caption := fmt.Sprintf("Preview of %s (%d of %d events)",
			filepath.Base(m.session.OutputPath()), n, m.state.Total)
		return m.showInPager("preview", caption, text)

	case inputtypes.SaveAction:
		cmd := m.cmdExecutor.ExecuteSave()
		m.syncMode()
		return cmd

	case inputtypes.DismissAction:
		kind := m.state.Popup.Kind
		m.state.ClearPopup()
		if kind == state.PopupSaved {
			return tea.Quit
		}
		m.syncMode()

	case inputtypes.QuitAction:
		return m.cmdExecutor.ExecuteDiscard()
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClearStatusMsg:
		if m.state.StatusMessage == msg.Message {
			m.state.SetStatus("", false)
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
			if msg.what == "help" {
				// fall back to the popup
				m.state.ShowPopup(state.PopupHelp, "", "")
				m.syncMode()
			} else {
				m.state.SetStatus(fmt.Sprintf("Pager failed: %v", msg.err), true)
			}
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// directory listings and other picker internals
		if m.session.State() == domain.StateUnloaded {
			return m, m.updatePicker(msg)
		}
		return m, nil
	}
}
