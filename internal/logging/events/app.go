package events

import "github.com/atomicstack/tmux-tree-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}

func (AppTracer) Attach(target string, insideTmux bool) {
	logging.Trace("app.attach", map[string]interface{}{"target": target, "insideTmux": insideTmux})
}
