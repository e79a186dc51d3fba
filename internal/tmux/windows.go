package tmux

import "strings"

const windowFormat = "#{window_id}|#{window_name}|#{window_active}|#{window_layout}"

// ListWindows returns the windows of one session, scoped by session ID.
func (c *Client) ListWindows(sessionID string) ([]Window, error) {
	out, err := c.runner.Run("list-windows", "-t", sessionID, "-F", windowFormat)
	if err != nil {
		return nil, err
	}
	return DecodeWindows(out), nil
}

// DecodeWindows parses list-windows output. The active flag defaults to
// false when the field is missing; name and layout default to empty.
func DecodeWindows(raw string) []Window {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil
	}
	windows := make([]Window, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, fieldSeparator)
		windows = append(windows, Window{
			ID:     fieldAt(fields, 0, ""),
			Name:   fieldAt(fields, 1, ""),
			Active: boolField(fields, 2),
			Layout: fieldAt(fields, 3, ""),
		})
	}
	return windows
}

// NewWindow creates a named window inside the targeted session.
func (c *Client) NewWindow(sessionID, name string) error {
	_, err := c.runner.Run("new-window", "-t", sessionID, "-n", name)
	return err
}

// RenameWindow renames the window targeted by ID.
func (c *Client) RenameWindow(target, newName string) error {
	_, err := c.runner.Run("rename-window", "-t", target, newName)
	return err
}

// KillWindow destroys the window targeted by ID.
func (c *Client) KillWindow(target string) error {
	_, err := c.runner.Run("kill-window", "-t", target)
	return err
}

// SelectWindow marks the targeted window active in its session, so an
// attach lands on it.
func (c *Client) SelectWindow(target string) error {
	_, err := c.runner.Run("select-window", "-t", target)
	return err
}
