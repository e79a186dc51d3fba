package tmux

import "strings"

// fieldSeparator joins the -F format fields on every listing. It must not
// appear inside field values; names containing it corrupt the line. Known
// limitation, matching tmux's own plain-text listings.
const fieldSeparator = "|"

// Session is one row of list-sessions output. Records are immutable
// snapshots; every refresh replaces the whole list.
type Session struct {
	ID      string
	Name    string
	Windows string
	Created string
}

// Window is one row of list-windows output, scoped to a session.
type Window struct {
	ID     string
	Name   string
	Active bool
	Layout string
}

// Pane is one row of list-panes output, scoped to a window.
type Pane struct {
	ID      string
	Width   string
	Height  string
	Path    string
	Command string
	Active  bool
}

func splitLines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	lines := make([]string, 0, 8)
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// fieldAt returns the field at idx, or fallback when the line was too short.
// Present-but-empty fields stay empty; only missing fields default.
func fieldAt(fields []string, idx int, fallback string) string {
	if idx >= len(fields) {
		return fallback
	}
	return fields[idx]
}

func boolField(fields []string, idx int) bool {
	return fieldAt(fields, idx, "0") == "1"
}
