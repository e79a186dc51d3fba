package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-tree-control/internal/logging/events"
	"github.com/atomicstack/tmux-tree-control/internal/state"
	"github.com/atomicstack/tmux-tree-control/internal/theme"
	"github.com/atomicstack/tmux-tree-control/internal/tmux"
)

// Mode selects which handler interprets key input. Exactly one of the
// mode-specific payloads (form, confirm, search) is non-nil outside of
// ModeBrowse.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeInput
	ModeConfirm
	ModeSearch
)

// Model is the single bubbletea model for the whole interface. All tmux
// calls run synchronously inside Update; the interface blocks for their
// duration and never observes half-applied state.
type Model struct {
	client *tmux.Client
	tree   *state.Tree
	styles theme.Styles

	focus  state.FocusArea
	width  int
	height int

	showFooter bool

	mode    Mode
	form    *inputForm
	confirm *confirmAction
	search  *searchPrompt

	info         string
	attachTarget string
}

// NewModel builds the model and runs the initial synchronization so the
// first render already shows live state.
func NewModel(client *tmux.Client, tree *state.Tree, width, height int, showFooter bool) Model {
	tree.RefreshAll()
	return Model{
		client:     client,
		tree:       tree,
		styles:     theme.Default(),
		focus:      state.FocusSessions,
		width:      width,
		height:     height,
		showFooter: showFooter,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case ModeInput:
			return m.updateInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		case ModeSearch:
			return m.updateSearch(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.info = ""
	switch msg.String() {
	case "q", "ctrl+c":
		events.App.Quit()
		return m, tea.Quit
	case "r":
		events.UI.Refresh("manual")
		m.tree.RefreshAll()
	case "j", "down":
		m.tree.Navigate(state.Down, m.focus)
		m.traceCursor()
	case "k", "up":
		m.tree.Navigate(state.Up, m.focus)
		m.traceCursor()
	case "tab", "right":
		m.focus = m.focus.Next()
		events.UI.Focus(m.focus.String())
	case "shift+tab", "left":
		m.focus = m.focus.Prev()
		events.UI.Focus(m.focus.String())
	case "n":
		m.startNew()
	case "R":
		m.startRename()
	case "d":
		m.startDelete()
	case "/":
		m.startSearch()
	case "enter":
		return m.attach()
	}
	return m, nil
}

func (m *Model) traceCursor() {
	switch m.focus {
	case state.FocusSessions:
		events.UI.Cursor("sessions", m.tree.SessionSel.Cursor)
	case state.FocusWindows:
		events.UI.Cursor("windows", m.tree.WindowSel.Cursor)
	case state.FocusPanes:
		events.UI.Cursor("panes", m.tree.PaneSel.Cursor)
	}
}

// AttachTarget reports the target recorded by an attach action, or the
// empty string when the interface quit without one.
func (m Model) AttachTarget() string {
	return m.attachTarget
}
