package events

import "github.com/atomicstack/tmux-tree-control/internal/logging"

type WindowTracer struct{}

var Window = WindowTracer{}

func (WindowTracer) NewPrompt(session string) {
	logging.Trace("window.new.prompt", map[string]interface{}{"session": session})
}

func (WindowTracer) RenamePrompt(target string) {
	logging.Trace("window.rename.prompt", map[string]interface{}{"target": target})
}

func (WindowTracer) Create(session, name string) {
	logging.Trace("window.new.create", map[string]interface{}{"session": session, "name": name})
}

func (WindowTracer) Rename(target, name string) {
	logging.Trace("window.rename", map[string]interface{}{"target": target, "name": name})
}

func (WindowTracer) Kill(target string) {
	logging.Trace("window.kill", map[string]interface{}{"target": target})
}

func (WindowTracer) Attach(target string) {
	logging.Trace("window.attach", map[string]interface{}{"target": target})
}
