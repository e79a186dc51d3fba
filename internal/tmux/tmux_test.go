package tmux

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// fakeRunner records every argv and serves scripted output.
type fakeRunner struct {
	out  string
	err  error
	args [][]string
}

func (r *fakeRunner) Run(args ...string) (string, error) {
	r.args = append(r.args, args)
	if r.err != nil {
		return "", r.err
	}
	return r.out, nil
}

func (r *fakeRunner) lastArgs(t *testing.T) []string {
	t.Helper()
	if len(r.args) == 0 {
		t.Fatalf("no tmux invocation recorded")
	}
	return r.args[len(r.args)-1]
}

func TestListSessionsDecodesRows(t *testing.T) {
	runner := &fakeRunner{out: "$0|main|3|Mon Jan  1 10:00:00 2024\n$1|work|1|Tue Jan  2 11:00:00 2024"}
	client := NewClientWithRunner(runner)

	sessions, err := client.ListSessions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Session{
		{ID: "$0", Name: "main", Windows: "3", Created: "Mon Jan  1 10:00:00 2024"},
		{ID: "$1", Name: "work", Windows: "1", Created: "Tue Jan  2 11:00:00 2024"},
	}
	if !reflect.DeepEqual(sessions, want) {
		t.Fatalf("decoded %+v, want %+v", sessions, want)
	}

	args := runner.lastArgs(t)
	if args[0] != "list-sessions" || args[1] != "-F" {
		t.Fatalf("unexpected argv %v", args)
	}
}

func TestDecodeSessionsShortLineDefaults(t *testing.T) {
	sessions := DecodeSessions("$0|main")
	if len(sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions))
	}
	if sessions[0].Windows != "0" {
		t.Fatalf("expected window count default %q, got %q", "0", sessions[0].Windows)
	}
	if sessions[0].Created != "" {
		t.Fatalf("expected empty created, got %q", sessions[0].Created)
	}
}

func TestDecodeSessionsPreservesEmptyPresentField(t *testing.T) {
	sessions := DecodeSessions("$0||2|date")
	if sessions[0].Name != "" {
		t.Fatalf("expected present-but-empty name, got %q", sessions[0].Name)
	}
	if sessions[0].Windows != "2" {
		t.Fatalf("expected window count 2, got %q", sessions[0].Windows)
	}
}

func TestDecodeSessionsEmptyOutput(t *testing.T) {
	if got := DecodeSessions(""); got != nil {
		t.Fatalf("expected nil for empty output, got %+v", got)
	}
	if got := DecodeSessions("\n\n"); got != nil {
		t.Fatalf("expected nil for blank output, got %+v", got)
	}
}

func TestDecodeWindows(t *testing.T) {
	windows := DecodeWindows("@0|editor|1|abcd,80x24,0,0\n@1|logs|0|efgh,80x24,0,0")
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if !windows[0].Active || windows[1].Active {
		t.Fatalf("active flags wrong: %+v", windows)
	}
	if windows[1].Layout != "efgh,80x24,0,0" {
		t.Fatalf("unexpected layout %q", windows[1].Layout)
	}
}

func TestDecodeWindowsMissingActiveDefaultsFalse(t *testing.T) {
	windows := DecodeWindows("@0|editor")
	if windows[0].Active {
		t.Fatalf("expected missing active flag to default to false")
	}
}

func TestDecodePanes(t *testing.T) {
	panes := DecodePanes("%0|80|24|/home/u|vim|1\n%1|80|23|/tmp|bash|0")
	if len(panes) != 2 {
		t.Fatalf("expected 2 panes, got %d", len(panes))
	}
	want := Pane{ID: "%0", Width: "80", Height: "24", Path: "/home/u", Command: "vim", Active: true}
	if panes[0] != want {
		t.Fatalf("decoded %+v, want %+v", panes[0], want)
	}
}

func TestDecodeOrderMatchesListing(t *testing.T) {
	panes := DecodePanes("%9|1|1||x|0\n%1|1|1||y|0\n%5|1|1||z|0")
	if panes[0].ID != "%9" || panes[1].ID != "%1" || panes[2].ID != "%5" {
		t.Fatalf("listing order not preserved: %+v", panes)
	}
}

func TestWriteArgvShapes(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClientWithRunner(runner)

	cases := []struct {
		name string
		call func() error
		want []string
	}{
		{"new-session", func() error { return client.NewSession("dev") }, []string{"new-session", "-d", "-s", "dev"}},
		{"rename-session", func() error { return client.RenameSession("dev", "ops") }, []string{"rename-session", "-t", "dev", "ops"}},
		{"kill-session", func() error { return client.KillSession("dev") }, []string{"kill-session", "-t", "dev"}},
		{"new-window", func() error { return client.NewWindow("$0", "logs") }, []string{"new-window", "-t", "$0", "-n", "logs"}},
		{"rename-window", func() error { return client.RenameWindow("@1", "logs") }, []string{"rename-window", "-t", "@1", "logs"}},
		{"kill-window", func() error { return client.KillWindow("@1") }, []string{"kill-window", "-t", "@1"}},
		{"select-window", func() error { return client.SelectWindow("@1") }, []string{"select-window", "-t", "@1"}},
		{"split-window", func() error { return client.SplitWindow("@1") }, []string{"split-window", "-t", "@1"}},
		{"kill-pane", func() error { return client.KillPane("%2") }, []string{"kill-pane", "-t", "%2"}},
		{"select-pane", func() error { return client.SelectPane("%2") }, []string{"select-pane", "-t", "%2"}},
		{"switch-client", func() error { return client.SwitchClient("dev") }, []string{"switch-client", "-t", "dev"}},
	}
	for _, tc := range cases {
		if err := tc.call(); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got := runner.lastArgs(t); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: argv %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestListSessionsPropagatesError(t *testing.T) {
	wantErr := &ProcessError{Args: []string{"list-sessions"}, Err: errors.New("exit status 1")}
	runner := &fakeRunner{err: wantErr}
	client := NewClientWithRunner(runner)

	sessions, err := client.ListSessions()
	if sessions != nil {
		t.Fatalf("expected nil sessions on error, got %+v", sessions)
	}
	var perr *ProcessError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProcessError, got %T", err)
	}
}

func TestProcessErrorMessageIncludesStderr(t *testing.T) {
	err := &ProcessError{
		Args:   []string{"kill-session", "-t", "dev"},
		Stderr: "session not found: dev",
		Err:    errors.New("exit status 1"),
	}
	msg := err.Error()
	if !strings.Contains(msg, "kill-session") || !strings.Contains(msg, "session not found") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestBaseArgsSocket(t *testing.T) {
	if got := baseArgs(""); len(got) != 0 {
		t.Fatalf("expected no base args without socket, got %v", got)
	}
	if got := baseArgs("/tmp/sock"); !reflect.DeepEqual(got, []string{"-S", "/tmp/sock"}) {
		t.Fatalf("unexpected base args %v", got)
	}
}
