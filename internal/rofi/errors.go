package rofi

import (
	"errors"
	"fmt"
)

// Error kinds returned by Menu and Child. Match them with errors.Is.
var (
	// ErrIO reports a failure to spawn the program or to talk to its pipes.
	ErrIO = errors.New("io error")
	// ErrParse reports an index payload that is not an integer.
	ErrParse = errors.New("parse error")
	// ErrInvalidWidth is returned by Menu.Width for out-of-range widths.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrConfig is returned when message-only mode is combined with elements.
	ErrConfig = errors.New("can't specify non-empty elements and message only")
	// ErrInterrupted means the program exited outside the accepted envelope.
	ErrInterrupted = errors.New("user interrupted the action")
	// ErrBlank means the program accepted but printed nothing.
	ErrBlank = errors.New("user chose a blank line")
)

// Error wraps one of the error kinds with context and an optional cause.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(msg string, err error) error {
	return &Error{Kind: ErrIO, Msg: msg, Err: err}
}

func parseError(payload string, err error) error {
	return &Error{Kind: ErrParse, Msg: fmt.Sprintf("payload %q", payload), Err: err}
}

func widthError(msg string) error {
	return &Error{Kind: ErrInvalidWidth, Msg: msg}
}
