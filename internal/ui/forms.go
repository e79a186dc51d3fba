package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputKind int

const (
	inputNewSession inputKind = iota
	inputRenameSession
	inputNewWindow
	inputRenameWindow
)

// inputForm is the payload of ModeInput: a single-line text prompt plus the
// identity of the record the submitted value applies to.
type inputForm struct {
	kind   inputKind
	title  string
	input  textinput.Model
	target string
	parent string
	errMsg string
}

func newInputForm(kind inputKind, title, initial, target, parent string) *inputForm {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.CharLimit = 64
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	return &inputForm{
		kind:   kind,
		title:  title,
		input:  ti,
		target: target,
		parent: parent,
	}
}

func (f *inputForm) value() string {
	return f.input.Value()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeBrowse
		m.form = nil
		return m, nil
	case "enter":
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	m.form.errMsg = ""
	return m, cmd
}

// sessionNameTaken guards against creating or renaming into a name tmux
// already uses, which rename-session would reject anyway.
func (m Model) sessionNameTaken(name string) bool {
	for _, s := range m.tree.Sessions {
		if s.Name == name {
			return true
		}
	}
	return false
}
