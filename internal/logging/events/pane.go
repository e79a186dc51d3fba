package events

import "github.com/atomicstack/tmux-tree-control/internal/logging"

type PaneTracer struct{}

var Pane = PaneTracer{}

func (PaneTracer) Split(window string) {
	logging.Trace("pane.split", map[string]interface{}{"window": window})
}

func (PaneTracer) Kill(target string) {
	logging.Trace("pane.kill", map[string]interface{}{"target": target})
}

func (PaneTracer) Attach(window, pane string) {
	logging.Trace("pane.attach", map[string]interface{}{"window": window, "pane": pane})
}
