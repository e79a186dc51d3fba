package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries the runtime settings resolved from flags and environment
// variables. Flags win over environment variables, which win over defaults.
type Config struct {
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Trace      bool
	LogFile    string
}

const (
	defaultWidth  = 120
	defaultHeight = 40
)

// LoadArgs parses the given command-line arguments and environment in the
// form returned by os.Environ.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := environMap(environ)

	cfg := Config{
		SocketPath: env["TMUX_TREE_CONTROL_SOCKET"],
		Width:      envOrInt(env, "TMUX_TREE_CONTROL_WIDTH", defaultWidth),
		Height:     envOrInt(env, "TMUX_TREE_CONTROL_HEIGHT", defaultHeight),
		ShowFooter: envOrBool(env, "TMUX_TREE_CONTROL_FOOTER", true),
		Verbose:    envOrBool(env, "TMUX_TREE_CONTROL_VERBOSE", false),
		Trace:      envOrBool(env, "TMUX_TREE_CONTROL_TRACE", false),
		LogFile:    env["TMUX_TREE_CONTROL_LOG_FILE"],
	}

	fs := flag.NewFlagSet("tmux-tree-control", flag.ContinueOnError)
	fs.StringVar(&cfg.SocketPath, "socket", cfg.SocketPath, "path to the tmux server socket")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "preferred width of the interface")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "preferred height of the interface")
	fs.BoolVar(&cfg.ShowFooter, "footer", cfg.ShowFooter, "show the key-hint footer")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log additional detail")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "emit structured trace entries to the log file")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "path of the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// MustLoad parses os.Args and exits on failure.
func MustLoad() Config {
	cfg, err := LoadArgs(os.Args[1:], os.Environ())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects settings no run can recover from.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	return nil
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		env[parts[0]] = parts[1]
	}
	return env
}

func envOrInt(env map[string]string, key string, fallback int) int {
	raw, ok := env[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	raw, ok := env[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return b
}
