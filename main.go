package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/tmux-tree-control/internal/app"
	"github.com/atomicstack/tmux-tree-control/internal/config"
	"github.com/atomicstack/tmux-tree-control/internal/logging"
	"github.com/atomicstack/tmux-tree-control/internal/logging/events"
)

func main() {
	cfg := config.MustLoad()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logging.Configure(cfg.LogFile)
	logging.SetTraceEnabled(cfg.Trace || cfg.Verbose)
	traceStartup(cfg)

	if err := app.Run(cfg); err != nil {
		logging.Error(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

func startupTracePayload(cfg config.Config) map[string]interface{} {
	return map[string]interface{}{
		"socket": cfg.SocketPath,
		"width":  cfg.Width,
		"height": cfg.Height,
		"footer": cfg.ShowFooter,
		"trace":  cfg.Trace,
		"tty":    ttyDetails(),
	}
}

func ttyDetails() map[string]interface{} {
	details := map[string]interface{}{
		"stdinIsTerminal":  term.IsTerminal(int(os.Stdin.Fd())),
		"stdoutIsTerminal": term.IsTerminal(int(os.Stdout.Fd())),
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		details["columns"] = w
		details["rows"] = h
	}
	return details
}
