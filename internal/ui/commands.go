package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-tree-control/internal/logging"
	"github.com/atomicstack/tmux-tree-control/internal/logging/events"
	"github.com/atomicstack/tmux-tree-control/internal/state"
)

type confirmKind int

const (
	confirmKillSession confirmKind = iota
	confirmKillWindow
	confirmKillPane
)

// confirmAction is the payload of ModeConfirm: a destructive command held
// back until the user acknowledges it.
type confirmAction struct {
	kind   confirmKind
	target string
	label  string
}

// startNew opens the prompt or runs the write appropriate to the focused
// level. Panes have no name, so splitting needs no prompt and runs at once.
func (m *Model) startNew() {
	switch m.focus {
	case state.FocusSessions:
		events.Session.NewPrompt(len(m.tree.Sessions))
		m.form = newInputForm(inputNewSession, "new session", "", "", "")
		m.mode = ModeInput
	case state.FocusWindows:
		session, ok := m.tree.SelectedSession()
		if !ok {
			m.info = "no session selected"
			return
		}
		events.Window.NewPrompt(session.Name)
		m.form = newInputForm(inputNewWindow, "new window", "", "", session.ID)
		m.mode = ModeInput
	case state.FocusPanes:
		window, ok := m.tree.SelectedWindow()
		if !ok {
			m.info = "no window selected"
			return
		}
		events.Pane.Split(window.ID)
		m.runWrite(m.client.SplitWindow(window.ID))
	}
}

func (m *Model) startRename() {
	switch m.focus {
	case state.FocusSessions:
		session, ok := m.tree.SelectedSession()
		if !ok {
			m.info = "no session selected"
			return
		}
		events.Session.RenamePrompt(session.Name)
		m.form = newInputForm(inputRenameSession, "rename session", session.Name, session.Name, "")
		m.mode = ModeInput
	case state.FocusWindows:
		window, ok := m.tree.SelectedWindow()
		if !ok {
			m.info = "no window selected"
			return
		}
		events.Window.RenamePrompt(window.ID)
		m.form = newInputForm(inputRenameWindow, "rename window", window.Name, window.ID, "")
		m.mode = ModeInput
	case state.FocusPanes:
		m.info = "panes cannot be renamed"
	}
}

func (m *Model) startDelete() {
	switch m.focus {
	case state.FocusSessions:
		session, ok := m.tree.SelectedSession()
		if !ok {
			m.info = "no session selected"
			return
		}
		m.confirm = &confirmAction{
			kind:   confirmKillSession,
			target: session.Name,
			label:  fmt.Sprintf("kill session %q?", session.Name),
		}
		m.mode = ModeConfirm
	case state.FocusWindows:
		window, ok := m.tree.SelectedWindow()
		if !ok {
			m.info = "no window selected"
			return
		}
		m.confirm = &confirmAction{
			kind:   confirmKillWindow,
			target: window.ID,
			label:  fmt.Sprintf("kill window %q?", window.Name),
		}
		m.mode = ModeConfirm
	case state.FocusPanes:
		pane, ok := m.tree.SelectedPane()
		if !ok {
			m.info = "no pane selected"
			return
		}
		m.confirm = &confirmAction{
			kind:   confirmKillPane,
			target: pane.ID,
			label:  fmt.Sprintf("kill pane %s?", pane.ID),
		}
		m.mode = ModeConfirm
	}
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	form := m.form
	name := strings.TrimSpace(form.value())
	if name == "" {
		form.errMsg = "name must not be empty"
		return m, nil
	}

	switch form.kind {
	case inputNewSession:
		if m.sessionNameTaken(name) {
			form.errMsg = fmt.Sprintf("session %q already exists", name)
			return m, nil
		}
		events.Session.Create(name)
		m.runWrite(m.client.NewSession(name))
	case inputRenameSession:
		if name != form.target && m.sessionNameTaken(name) {
			form.errMsg = fmt.Sprintf("session %q already exists", name)
			return m, nil
		}
		events.Session.Rename(form.target, name)
		m.runWrite(m.client.RenameSession(form.target, name))
	case inputNewWindow:
		events.Window.Create(form.parent, name)
		m.runWrite(m.client.NewWindow(form.parent, name))
	case inputRenameWindow:
		events.Window.Rename(form.target, name)
		m.runWrite(m.client.RenameWindow(form.target, name))
	}

	m.mode = ModeBrowse
	m.form = nil
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		confirm := m.confirm
		switch confirm.kind {
		case confirmKillSession:
			events.Session.Kill(confirm.target)
			m.runWrite(m.client.KillSession(confirm.target))
		case confirmKillWindow:
			events.Window.Kill(confirm.target)
			m.runWrite(m.client.KillWindow(confirm.target))
		case confirmKillPane:
			events.Pane.Kill(confirm.target)
			m.runWrite(m.client.KillPane(confirm.target))
		}
		m.mode = ModeBrowse
		m.confirm = nil
	case "n", "N", "esc", "q":
		m.mode = ModeBrowse
		m.confirm = nil
	}
	return m, nil
}

// runWrite logs a failed write and re-synchronizes unconditionally. A write
// that failed may still have changed tmux state, and one that succeeded has;
// either way the lists are stale.
func (m *Model) runWrite(err error) {
	if err != nil {
		logging.Error(err)
		m.info = "tmux command failed"
	}
	m.tree.RefreshAll()
}

// attach records the target of the focused record and quits. The actual
// hand-off to tmux happens after the program loop exits, once the terminal
// has been restored.
func (m Model) attach() (tea.Model, tea.Cmd) {
	switch m.focus {
	case state.FocusSessions:
		session, ok := m.tree.SelectedSession()
		if !ok {
			return m, nil
		}
		events.Session.Attach(session.Name)
		m.attachTarget = session.Name
	case state.FocusWindows:
		session, sok := m.tree.SelectedSession()
		window, wok := m.tree.SelectedWindow()
		if !sok || !wok {
			return m, nil
		}
		target := session.Name + ":" + window.ID
		events.Window.Attach(target)
		m.attachTarget = target
	case state.FocusPanes:
		session, sok := m.tree.SelectedSession()
		window, wok := m.tree.SelectedWindow()
		pane, pok := m.tree.SelectedPane()
		if !sok || !wok || !pok {
			return m, nil
		}
		events.Pane.Attach(window.ID, pane.ID)
		m.runWrite(m.client.SelectWindow(window.ID))
		m.runWrite(m.client.SelectPane(pane.ID))
		m.attachTarget = session.Name
	}
	return m, tea.Quit
}
