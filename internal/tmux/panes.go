package tmux

import "strings"

const paneFormat = "#{pane_id}|#{pane_width}|#{pane_height}|#{pane_current_path}|#{pane_current_command}|#{pane_active}"

// ListPanes returns the panes of one window, scoped by window ID.
func (c *Client) ListPanes(windowID string) ([]Pane, error) {
	out, err := c.runner.Run("list-panes", "-t", windowID, "-F", paneFormat)
	if err != nil {
		return nil, err
	}
	return DecodePanes(out), nil
}

// DecodePanes parses list-panes output. Missing trailing fields default to
// empty strings; the active flag defaults to false.
func DecodePanes(raw string) []Pane {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil
	}
	panes := make([]Pane, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, fieldSeparator)
		panes = append(panes, Pane{
			ID:      fieldAt(fields, 0, ""),
			Width:   fieldAt(fields, 1, ""),
			Height:  fieldAt(fields, 2, ""),
			Path:    fieldAt(fields, 3, ""),
			Command: fieldAt(fields, 4, ""),
			Active:  boolField(fields, 5),
		})
	}
	return panes
}

// SplitWindow adds a pane to the targeted window using the default split.
func (c *Client) SplitWindow(windowID string) error {
	_, err := c.runner.Run("split-window", "-t", windowID)
	return err
}

// KillPane destroys the pane targeted by ID.
func (c *Client) KillPane(target string) error {
	_, err := c.runner.Run("kill-pane", "-t", target)
	return err
}

// SelectPane marks the targeted pane active in its window, so an attach
// lands the cursor on it.
func (c *Client) SelectPane(target string) error {
	_, err := c.runner.Run("select-pane", "-t", target)
	return err
}
