package rofi

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Exit codes used by rofi. 0 is a normal accept; ExitCustomFirst through
// ExitCustomLast are reported for -kb-custom-N bindings. Every other code is
// a cancellation.
const (
	ExitAccept      = 0
	ExitCustomFirst = 10
	ExitCustomLast  = 30
)

// NoIndex is the index reported when the answer does not name an element.
const NoIndex = -1

// Accepted reports whether code carries an answer.
func Accepted(code int) bool {
	return code == ExitAccept || (code >= ExitCustomFirst && code <= ExitCustomLast)
}

// KeybindingCode returns the exit code rofi uses for custom keybinding id.
func KeybindingCode(id int) int {
	return ExitCustomFirst + id - 1
}

// KeybindingID is the inverse of KeybindingCode. It returns 0 when code is
// not in the custom band.
func KeybindingID(code int) int {
	if code < ExitCustomFirst || code > ExitCustomLast {
		return 0
	}
	return code - ExitCustomFirst + 1
}

func interrupted(code int, reason string) error {
	msg := fmt.Sprintf("exit code %d", code)
	if reason != "" {
		msg += " (" + reason + ")"
	}
	return &Error{Kind: ErrInterrupted, Msg: msg}
}

// readPayload classifies code and, when accepted, reads out with exactly one
// trailing newline removed.
func readPayload(code int, out io.Reader) (string, error) {
	if !Accepted(code) {
		return "", interrupted(code, "")
	}
	if out == nil {
		return "", ErrBlank
	}
	data, err := io.ReadAll(out)
	if err != nil {
		return "", ioError("read output", err)
	}
	payload := strings.TrimSuffix(string(data), "\n")
	if payload == "" {
		return "", ErrBlank
	}
	return payload, nil
}

func decodeText(code int, out io.Reader) (int, string, error) {
	payload, err := readPayload(code, out)
	if err != nil {
		return code, "", err
	}
	return code, payload, nil
}

func decodeIndex(code int, out io.Reader, elements int) (int, int, error) {
	payload, err := readPayload(code, out)
	if err != nil {
		return code, NoIndex, err
	}
	idx, err := strconv.Atoi(payload)
	if err != nil {
		return code, NoIndex, parseError(payload, err)
	}
	if idx < 0 || idx >= elements {
		return code, NoIndex, nil
	}
	return code, idx, nil
}
