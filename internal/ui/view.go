package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tmux-tree-control/internal/format/table"
	"github.com/atomicstack/tmux-tree-control/internal/state"
)

const ellipsis = "…"

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	// Borders and padding eat two rows and four columns per panel.
	footerLines := m.footerHeight()
	panelHeight := height - footerLines - 2
	if panelHeight < 1 {
		panelHeight = 1
	}

	sessionWidth := width * 30 / 100
	windowWidth := width * 35 / 100
	paneWidth := width - sessionWidth - windowWidth
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPanel("sessions", m.sessionLines(), sessionWidth, panelHeight, m.focus == state.FocusSessions),
		m.renderPanel("windows", m.windowLines(), windowWidth, panelHeight, m.focus == state.FocusWindows),
		m.renderPanel("panes", m.paneLines(), paneWidth, panelHeight, m.focus == state.FocusPanes),
	)

	parts := []string{columns}
	if footer := m.footerView(width); footer != "" {
		parts = append(parts, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type line struct {
	text     string
	selected bool
}

func (m Model) renderPanel(title string, lines []line, width, height int, focused bool) string {
	border := m.styles.BorderInactive
	if focused {
		border = m.styles.BorderActive
	}
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	rows := make([]string, 0, len(lines)+1)
	rows = append(rows, m.styles.Title.Render(truncate.StringWithTail(title, uint(inner), ellipsis)))
	for _, l := range lines {
		if len(rows) > height {
			break
		}
		text := truncate.StringWithTail(l.text, uint(inner), ellipsis)
		if l.selected {
			text = m.styles.SelectedItem.Render(text)
		} else {
			text = m.styles.Item.Render(text)
		}
		rows = append(rows, text)
	}

	return border.Copy().
		Width(inner).
		Height(height).
		Render(strings.Join(rows, "\n"))
}

func (m Model) sessionLines() []line {
	if len(m.tree.Sessions) == 0 {
		return []line{{text: m.styles.Muted.Render("no sessions")}}
	}
	rows := make([][]string, len(m.tree.Sessions))
	for i, s := range m.tree.Sessions {
		rows[i] = []string{s.Name, s.Windows + "w", s.Created}
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
	lines := make([]line, len(formatted))
	for i, text := range formatted {
		lines[i] = line{text: text, selected: i == m.tree.SessionSel.Cursor}
	}
	return lines
}

func (m Model) windowLines() []line {
	if len(m.tree.Windows) == 0 {
		return []line{{text: m.styles.Muted.Render("no windows")}}
	}
	lines := make([]line, len(m.tree.Windows))
	for i, w := range m.tree.Windows {
		marker := " "
		if w.Active {
			marker = m.styles.ActiveMarker.Render("*")
		}
		text := fmt.Sprintf("%s %s: %s", marker, w.ID, w.Name)
		if w.Layout != "" {
			text += " [" + w.Layout + "]"
		}
		lines[i] = line{text: text, selected: i == m.tree.WindowSel.Cursor}
	}
	return lines
}

func (m Model) paneLines() []line {
	if len(m.tree.Panes) == 0 {
		return []line{{text: m.styles.Muted.Render("no panes")}}
	}
	lines := make([]line, 0, len(m.tree.Panes)*2)
	for i, p := range m.tree.Panes {
		marker := " "
		if p.Active {
			marker = m.styles.ActiveMarker.Render("*")
		}
		selected := i == m.tree.PaneSel.Cursor
		lines = append(lines,
			line{
				text:     fmt.Sprintf("%s %s %sx%s %s", marker, p.ID, p.Width, p.Height, p.Command),
				selected: selected,
			},
			line{
				text:     "    " + p.Path,
				selected: selected,
			},
		)
	}
	return lines
}

func (m Model) footerHeight() int {
	if m.mode != ModeBrowse {
		return 2
	}
	if !m.showFooter && m.info == "" {
		return 0
	}
	return 1
}

func (m Model) footerView(width int) string {
	var text string
	switch m.mode {
	case ModeInput:
		text = m.styles.ModalTitle.Render(m.form.title) + " " + m.form.input.View()
		if m.form.errMsg != "" {
			text += "\n" + m.styles.Info.Render(m.form.errMsg)
		} else {
			text += "\n" + m.styles.Footer.Render("enter confirm · esc cancel")
		}
	case ModeConfirm:
		text = m.styles.ModalTitle.Render(m.confirm.label) +
			"\n" + m.styles.Footer.Render("y confirm · n cancel")
	case ModeSearch:
		text = m.styles.ModalTitle.Render("search "+m.focus.String()) + " " + m.search.input.View() +
			"\n" + m.styles.Footer.Render("enter jump · esc cancel")
	default:
		if m.info != "" {
			text = m.styles.Info.Render(m.info)
			break
		}
		if !m.showFooter {
			return ""
		}
		text = m.styles.Footer.Render(m.browseHints())
	}
	return truncateLines(text, width)
}

func (m Model) browseHints() string {
	common := "q quit · r refresh · j/k move · tab focus · enter attach · / search"
	switch m.focus {
	case state.FocusPanes:
		return "n split · d kill · " + common
	default:
		return "n new · R rename · d kill · " + common
	}
}

func truncateLines(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = truncate.StringWithTail(l, uint(width), ellipsis)
	}
	return strings.Join(lines, "\n")
}
