package events

import "github.com/atomicstack/marcador/internal/logging"

// MenuTracer records rofi invocations and how their answers were handled.
type MenuTracer struct{}

type menuOutcome string

const (
	MenuOutcomeInterrupted menuOutcome = "interrupted"
	MenuOutcomeBlank       menuOutcome = "blank"
	MenuOutcomeNotFound    menuOutcome = "not-found"
)

var Menu = MenuTracer{}

func (MenuTracer) Open(prompt string, elements int, args []string) {
	logging.Trace("menu.open", map[string]interface{}{"prompt": prompt, "elements": elements, "args": args})
}

func (MenuTracer) Result(prompt string, code int, payload interface{}) {
	logging.Trace("menu.result", map[string]interface{}{"prompt": prompt, "code": code, "payload": payload})
}

func (MenuTracer) Dispatch(action string, code, index int) {
	logging.Trace("menu.dispatch", map[string]interface{}{"action": action, "code": code, "index": index})
}

func (MenuTracer) Skip(prompt string, outcome menuOutcome, detail string) {
	logging.Trace("menu.skip", map[string]interface{}{"prompt": prompt, "outcome": string(outcome), "detail": detail})
}
