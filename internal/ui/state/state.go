package state

import (
	"icsselect/internal/domain"
)

// PopupKind identifies which modal dialog is open
type PopupKind int

const (
	PopupNone PopupKind = iota
	PopupLoadError
	PopupSaveError
	PopupSaved
	PopupHelp
)

// Popup is a modal dialog overlaid on the main view
type Popup struct {
	Kind  PopupKind
	Title string
	Body  string
}

// AppState contains all the UI state that is not owned by the session
type AppState struct {
	// Loaded calendar
	FileName string
	Total    int

	// Pagination
	Pages     []domain.Page
	Page      int // zero-based page on screen
	PageCount int
	PageRows  int // rows on the current page

	// Cursor within the current page
	Cursor int

	// UI state
	Popup         Popup
	StatusMessage string
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetPages installs the page layout of a freshly loaded calendar and shows the first page
func (s *AppState) SetPages(fileName string, total int, pages []domain.Page) {
	s.FileName = fileName
	s.Total = total
	s.Pages = pages
	s.PageCount = len(pages)
	s.Page = 0
	s.Cursor = 0
	s.syncRows()
}

// Reset forgets the loaded calendar
func (s *AppState) Reset() {
	s.SetPages("", 0, nil)
}

// SetPage moves to page n, clamped to the valid range. The cursor keeps its
// row when the new page is long enough.
func (s *AppState) SetPage(n int) {
	if s.PageCount == 0 {
		return
	}
	s.Page = max(0, min(n, s.PageCount-1))
	s.syncRows()
}

// MoveCursor moves the cursor by delta rows, staying on the current page
func (s *AppState) MoveCursor(delta int) {
	if s.PageRows == 0 {
		s.Cursor = 0
		return
	}
	s.Cursor = max(0, min(s.Cursor+delta, s.PageRows-1))
}

// CurrentPage returns the page on screen
func (s *AppState) CurrentPage() (domain.Page, bool) {
	if s.Page < 0 || s.Page >= len(s.Pages) {
		return domain.Page{}, false
	}
	return s.Pages[s.Page], true
}

// CurrentIndex returns the event index under the cursor, or -1 when nothing is loaded
func (s *AppState) CurrentIndex() int {
	p, ok := s.CurrentPage()
	if !ok || p.Len() == 0 {
		return -1
	}
	return p.Start + s.Cursor
}

// Popup operations

func (s *AppState) ShowPopup(kind PopupKind, title, body string) {
	s.Popup = Popup{Kind: kind, Title: title, Body: body}
}

func (s *AppState) ClearPopup() {
	s.Popup = Popup{}
}

func (s *AppState) HasPopup() bool {
	return s.Popup.Kind != PopupNone
}

// SetStatus sets the status line text
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

func (s *AppState) syncRows() {
	p, ok := s.CurrentPage()
	if !ok {
		s.PageRows = 0
		s.Cursor = 0
		return
	}
	s.PageRows = p.Len()
	s.MoveCursor(0)
}
