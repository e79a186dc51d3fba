package state

import (
	"github.com/atomicstack/tmux-tree-control/internal/logging"
	"github.com/atomicstack/tmux-tree-control/internal/tmux"
)

// Fetcher lists one level of the tmux hierarchy. *tmux.Client satisfies it;
// tests substitute scripted fetchers.
type Fetcher interface {
	ListSessions() ([]tmux.Session, error)
	ListWindows(sessionID string) ([]tmux.Window, error)
	ListPanes(windowID string) ([]tmux.Pane, error)
}

// Direction of a navigation step within one list.
type Direction int

const (
	Down Direction = iota
	Up
)

// Tree owns the three record lists and their selections and keeps them
// consistent with the live tmux state. Lists are always replaced wholesale,
// parents before children: windows are only valid relative to the selected
// session, panes relative to the selected window. A failed listing degrades
// the level to empty instead of surfacing the error; the view always has
// something to render.
type Tree struct {
	fetcher Fetcher

	Sessions []tmux.Session
	Windows  []tmux.Window
	Panes    []tmux.Pane

	SessionSel Selection
	WindowSel  Selection
	PaneSel    Selection
}

// NewTree builds an empty tree over the given fetcher. Callers run
// RefreshAll before first render.
func NewTree(fetcher Fetcher) *Tree {
	return &Tree{
		fetcher:    fetcher,
		SessionSel: NewSelection(),
		WindowSel:  NewSelection(),
		PaneSel:    NewSelection(),
	}
}

// RefreshAll re-synchronizes every level from the root. Each selection is
// repaired against its fresh list before the child level is fetched, since
// the child fetch targets the just-repaired parent.
func (t *Tree) RefreshAll() {
	sessions, err := t.fetcher.ListSessions()
	if err != nil {
		logging.Error(err)
		sessions = nil
	}
	t.Sessions = sessions
	t.SessionSel.Repair(len(t.Sessions))

	t.Windows = nil
	if session, ok := t.SelectedSession(); ok {
		windows, err := t.fetcher.ListWindows(session.ID)
		if err != nil {
			logging.Error(err)
			windows = nil
		}
		t.Windows = windows
	}
	t.WindowSel.Repair(len(t.Windows))

	t.refreshPanes()
}

// RefreshPanes re-lists panes for the selected window only. Used after
// window-level navigation, where sessions and windows are known unchanged.
func (t *Tree) RefreshPanes() {
	t.refreshPanes()
}

func (t *Tree) refreshPanes() {
	t.Panes = nil
	if window, ok := t.SelectedWindow(); ok {
		panes, err := t.fetcher.ListPanes(window.ID)
		if err != nil {
			logging.Error(err)
			panes = nil
		}
		t.Panes = panes
	}
	t.PaneSel.Repair(len(t.Panes))
}

// Navigate moves the selection at the focused level. Moving a parent
// invalidates its descendants: session moves trigger a full refresh, window
// moves re-list panes, pane moves touch nothing else.
func (t *Tree) Navigate(dir Direction, focus FocusArea) {
	switch focus {
	case FocusSessions:
		move(&t.SessionSel, len(t.Sessions), dir)
		t.RefreshAll()
	case FocusWindows:
		move(&t.WindowSel, len(t.Windows), dir)
		t.RefreshPanes()
	case FocusPanes:
		move(&t.PaneSel, len(t.Panes), dir)
	}
}

func move(sel *Selection, length int, dir Direction) {
	if dir == Up {
		sel.Prev(length)
		return
	}
	sel.Next(length)
}

// SelectedSession returns the record under the session cursor.
func (t *Tree) SelectedSession() (tmux.Session, bool) {
	if i := t.SessionSel.Cursor; i >= 0 && i < len(t.Sessions) {
		return t.Sessions[i], true
	}
	return tmux.Session{}, false
}

// SelectedWindow returns the record under the window cursor.
func (t *Tree) SelectedWindow() (tmux.Window, bool) {
	if i := t.WindowSel.Cursor; i >= 0 && i < len(t.Windows) {
		return t.Windows[i], true
	}
	return tmux.Window{}, false
}

// SelectedPane returns the record under the pane cursor.
func (t *Tree) SelectedPane() (tmux.Pane, bool) {
	if i := t.PaneSel.Cursor; i >= 0 && i < len(t.Panes) {
		return t.Panes[i], true
	}
	return tmux.Pane{}, false
}
