package tmux

import (
	"os"
	"os/exec"
	"syscall"
)

// InsideTmux reports whether the process was launched from within a tmux
// client. Decides between switch-client and a fresh attach.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}

// SwitchClient retargets the already-attached client. Only meaningful when
// running inside tmux.
func (c *Client) SwitchClient(target string) error {
	_, err := c.runner.Run("switch-client", "-t", target)
	return err
}

// Attach replaces the current process image with `tmux attach-session -t
// target`. When the exec cannot be performed it falls back to spawning a
// child and waiting for it to exit.
func Attach(socketPath, target string) error {
	argv := append([]string{"tmux"}, baseArgs(socketPath)...)
	argv = append(argv, "attach-session", "-t", target)
	if path, err := exec.LookPath("tmux"); err == nil {
		if err := syscall.Exec(path, argv, os.Environ()); err == nil {
			return nil
		}
	}
	cmd := exec.Command("tmux", argv[1:]...) //nolint:gosec
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
