package tmux

import "strings"

const sessionFormat = "#{session_id}|#{session_name}|#{session_windows}|#{session_created_string}"

// ListSessions returns every session in tmux's listing order, unsorted.
func (c *Client) ListSessions() ([]Session, error) {
	out, err := c.runner.Run("list-sessions", "-F", sessionFormat)
	if err != nil {
		return nil, err
	}
	return DecodeSessions(out), nil
}

// DecodeSessions parses list-sessions output independently of the transport.
// Missing trailing fields default to the empty string, except the window
// count which defaults to "0". Malformed lines degrade, they are never
// dropped.
func DecodeSessions(raw string) []Session {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil
	}
	sessions := make([]Session, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, fieldSeparator)
		sessions = append(sessions, Session{
			ID:      fieldAt(fields, 0, ""),
			Name:    fieldAt(fields, 1, ""),
			Windows: fieldAt(fields, 2, "0"),
			Created: fieldAt(fields, 3, ""),
		})
	}
	return sessions
}

// NewSession creates a detached session.
func (c *Client) NewSession(name string) error {
	_, err := c.runner.Run("new-session", "-d", "-s", name)
	return err
}

// RenameSession renames the session targeted by its current name.
func (c *Client) RenameSession(target, newName string) error {
	_, err := c.runner.Run("rename-session", "-t", target, newName)
	return err
}

// KillSession destroys the session targeted by name.
func (c *Client) KillSession(target string) error {
	_, err := c.runner.Run("kill-session", "-t", target)
	return err
}
