// Package app wires the tmux client, the tree state, and the bubbletea
// program together, and hands the terminal over to tmux on attach.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tmux-tree-control/internal/config"
	"github.com/atomicstack/tmux-tree-control/internal/logging/events"
	"github.com/atomicstack/tmux-tree-control/internal/state"
	"github.com/atomicstack/tmux-tree-control/internal/tmux"
	"github.com/atomicstack/tmux-tree-control/internal/ui"
)

// Run drives one full interactive session. It returns once the user quits,
// or once the attach hand-off has completed.
func Run(cfg config.Config) error {
	client := tmux.NewClient(cfg.SocketPath)
	tree := state.NewTree(client)
	model := ui.NewModel(client, tree, cfg.Width, cfg.Height, cfg.ShowFooter)

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("interface failed: %w", err)
	}

	finalModel, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}

	target := finalModel.AttachTarget()
	if target == "" {
		return nil
	}

	inside := tmux.InsideTmux()
	events.App.Attach(target, inside)
	if inside {
		return client.SwitchClient(target)
	}
	return tmux.Attach(cfg.SocketPath, target)
}
