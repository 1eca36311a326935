package dmenu

import (
	"strconv"

	"github.com/atomicstack/marcador/internal/rofi"
	"github.com/atomicstack/marcador/internal/rofi/pango"
)

// ExitCancel is the exit code reported when the user dismisses the window.
const ExitCancel = 1

// Result is what the user did in the selector.
type Result struct {
	// Cancelled is set when the window was dismissed.
	Cancelled  bool
	// Index is the chosen element, or rofi.NoIndex for custom input.
	Index      int
	// Input is the filter text at the time of the answer.
	Input      string
	// Keybinding is the -kb-custom id that ended the session, 0 for accept.
	Keybinding int
}

// Cancel is the result of a dismissed window.
func Cancel() Result {
	return Result{Cancelled: true, Index: rofi.NoIndex}
}

// Render returns what rofi would print to standard output for res together
// with its exit code. A non-empty payload is newline terminated.
func Render(opts Options, elements []string, res Result) (string, int) {
	if res.Cancelled {
		return "", ExitCancel
	}
	code := rofi.ExitAccept
	if res.Keybinding > 0 {
		code = rofi.KeybindingCode(res.Keybinding)
	}
	if opts.MessageOnly {
		return "", code
	}
	var selected string
	valid := res.Index >= 0 && res.Index < len(elements)
	if valid {
		selected = elements[res.Index]
	}
	var payload string
	switch opts.Format {
	case rofi.Index:
		if valid {
			payload = strconv.Itoa(res.Index)
		} else {
			payload = strconv.Itoa(rofi.NoIndex)
		}
	case rofi.UserInput:
		payload = res.Input
	case rofi.StrippedText:
		payload = res.Input
		if valid {
			payload = selected
			if opts.MarkupRows {
				payload = pango.Strip(selected)
			}
		}
	default:
		payload = res.Input
		if valid {
			payload = selected
		}
	}
	if payload == "" {
		return "", code
	}
	return payload + "\n", code
}
