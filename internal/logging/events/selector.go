package events

import "github.com/atomicstack/marcador/internal/logging"

// SelectorTracer records the terminal selector's lifecycle.
type SelectorTracer struct{}

var Selector = SelectorTracer{}

func (SelectorTracer) Start(args []string, candidates int) {
	logging.Trace("selector.start", map[string]interface{}{"args": args, "candidates": candidates})
}

func (SelectorTracer) Filter(query string, matches int) {
	logging.Trace("selector.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (SelectorTracer) Cursor(index int) {
	logging.Trace("selector.cursor", map[string]interface{}{"cursor": index})
}

func (SelectorTracer) Finish(code int, output string) {
	logging.Trace("selector.finish", map[string]interface{}{"code": code, "output": output})
}
