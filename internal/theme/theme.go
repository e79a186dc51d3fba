package theme

import "github.com/charmbracelet/lipgloss"

// Styles groups every lipgloss style the interface renders with. A single
// instance is built at startup and shared by the view code.
type Styles struct {
	BorderActive   *lipgloss.Style
	BorderInactive *lipgloss.Style
	Title          *lipgloss.Style
	Item           *lipgloss.Style
	SelectedItem   *lipgloss.Style
	ActiveMarker   *lipgloss.Style
	Footer         *lipgloss.Style
	ModalTitle     *lipgloss.Style
	Info           *lipgloss.Style
	Muted          *lipgloss.Style
}

func Default() Styles {
	return Styles{
		BorderActive: ptr(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)),
		BorderInactive: ptr(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)),
		Title: ptr(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))),
		Item: ptr(lipgloss.NewStyle()),
		SelectedItem: ptr(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))),
		ActiveMarker: ptr(lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))),
		Footer: ptr(lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))),
		ModalTitle: ptr(lipgloss.NewStyle().
			Bold(true)),
		Info: ptr(lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))),
		Muted: ptr(lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))),
	}
}

func ptr(s lipgloss.Style) *lipgloss.Style {
	return &s
}
