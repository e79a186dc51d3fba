package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/tmux-tree-control/internal/logging/events"
	"github.com/atomicstack/tmux-tree-control/internal/state"
)

// searchPrompt is the payload of ModeSearch: a fuzzy query against the
// labels of the focused column.
type searchPrompt struct {
	input textinput.Model
}

func (m *Model) startSearch() {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 64
	ti.Focus()
	m.search = &searchPrompt{input: ti}
	m.mode = ModeSearch
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeBrowse
		m.search = nil
		return m, nil
	case "enter":
		m.jumpToMatch(m.search.input.Value())
		m.mode = ModeBrowse
		m.search = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

// jumpToMatch moves the focused cursor to the best fuzzy match and refreshes
// descendants exactly as a manual navigation to that index would.
func (m *Model) jumpToMatch(query string) {
	idx := bestMatchIndex(query, m.focusedLabels())
	events.UI.Search(m.focus.String(), query, idx)
	if idx < 0 {
		m.info = "no match"
		return
	}
	switch m.focus {
	case state.FocusSessions:
		m.tree.SessionSel.Cursor = idx
		m.tree.RefreshAll()
	case state.FocusWindows:
		m.tree.WindowSel.Cursor = idx
		m.tree.RefreshPanes()
	case state.FocusPanes:
		m.tree.PaneSel.Cursor = idx
	}
}

func (m Model) focusedLabels() []string {
	switch m.focus {
	case state.FocusSessions:
		labels := make([]string, len(m.tree.Sessions))
		for i, s := range m.tree.Sessions {
			labels[i] = s.Name
		}
		return labels
	case state.FocusWindows:
		labels := make([]string, len(m.tree.Windows))
		for i, w := range m.tree.Windows {
			labels[i] = w.Name
		}
		return labels
	default:
		labels := make([]string, len(m.tree.Panes))
		for i, p := range m.tree.Panes {
			labels[i] = p.Command
		}
		return labels
	}
}

// bestMatchIndex returns the index of the closest fuzzy match, or -1 when
// nothing matches or the query is blank.
func bestMatchIndex(query string, labels []string) int {
	if strings.TrimSpace(query) == "" {
		return -1
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		return -1
	}
	sort.Sort(ranks)
	return ranks[0].OriginalIndex
}
