package events

import "github.com/atomicstack/tmux-tree-control/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Focus(area string) {
	logging.Trace("ui.focus", map[string]interface{}{"area": area})
}

func (UITracer) Cursor(area string, index int) {
	logging.Trace("ui.cursor", map[string]interface{}{"area": area, "index": index})
}

func (UITracer) Refresh(reason string) {
	logging.Trace("ui.refresh", map[string]interface{}{"reason": reason})
}

func (UITracer) Search(area, query string, index int) {
	logging.Trace("ui.search", map[string]interface{}{"area": area, "query": query, "index": index})
}
