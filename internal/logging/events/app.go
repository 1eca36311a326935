package events

import "github.com/atomicstack/marcador/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Command(name string, args []string) {
	logging.Trace("app.command", map[string]interface{}{"command": name, "args": args})
}

func (AppTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("app.error", map[string]interface{}{"error": err.Error()})
}
