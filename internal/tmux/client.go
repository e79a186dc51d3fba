package tmux

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a single tmux invocation and returns its trimmed stdout.
// The production implementation shells out to the tmux binary on PATH; tests
// substitute a scripted runner.
type Runner interface {
	Run(args ...string) (string, error)
}

// ProcessError reports a tmux invocation that could not be launched or that
// exited non-zero. Stderr is carried for diagnostics only and never drives
// control flow.
type ProcessError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("tmux %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ProcessError) Unwrap() error { return e.Err }

type execRunner struct {
	socketPath string
}

func (r execRunner) Run(args ...string) (string, error) {
	full := append(baseArgs(r.socketPath), args...)
	cmd := exec.Command("tmux", full...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", &ProcessError{Args: full, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// Client issues tmux commands through a Runner. One invocation per call, no
// retries, no timeout: a hung tmux server blocks the caller.
type Client struct {
	runner Runner
}

// NewClient builds a Client that shells out to the tmux binary on PATH,
// optionally pinned to a socket path via -S.
func NewClient(socketPath string) *Client {
	return &Client{runner: execRunner{socketPath: socketPath}}
}

// NewClientWithRunner wires a custom Runner. Used by tests.
func NewClientWithRunner(r Runner) *Client {
	return &Client{runner: r}
}
