package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != defaultWidth || cfg.Height != defaultHeight {
		t.Fatalf("unexpected dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.Verbose || cfg.Trace {
		t.Fatalf("expected quiet defaults, got verbose=%v trace=%v", cfg.Verbose, cfg.Trace)
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"TMUX_TREE_CONTROL_SOCKET=/tmp/custom.sock",
		"TMUX_TREE_CONTROL_WIDTH=200",
		"TMUX_TREE_CONTROL_FOOTER=false",
		"TMUX_TREE_CONTROL_TRACE=1",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SocketPath != "/tmp/custom.sock" {
		t.Fatalf("unexpected socket %q", cfg.SocketPath)
	}
	if cfg.Width != 200 {
		t.Fatalf("unexpected width %d", cfg.Width)
	}
	if cfg.ShowFooter {
		t.Fatalf("expected footer disabled")
	}
	if !cfg.Trace {
		t.Fatalf("expected trace enabled")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := []string{"TMUX_TREE_CONTROL_WIDTH=200"}
	args := []string{"-width", "90", "-socket", "/tmp/flag.sock"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 90 {
		t.Fatalf("expected flag to win, got width %d", cfg.Width)
	}
	if cfg.SocketPath != "/tmp/flag.sock" {
		t.Fatalf("unexpected socket %q", cfg.SocketPath)
	}
}

func TestLoadArgsIgnoresMalformedEnvValues(t *testing.T) {
	env := []string{
		"TMUX_TREE_CONTROL_WIDTH=wide",
		"TMUX_TREE_CONTROL_FOOTER=maybe",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != defaultWidth {
		t.Fatalf("expected default width, got %d", cfg.Width)
	}
	if !cfg.ShowFooter {
		t.Fatalf("expected default footer setting")
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Width: 120, Height: 40}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero width")
	}
	cfg = Config{Width: 120, Height: -1}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for negative height")
	}
}
