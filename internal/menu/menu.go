// Package menu is the rofi front end of marcador: it lists bookmarks, reads
// the user's answer and dispatches it to an action.
package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/marcador/internal/bookmark"
	"github.com/atomicstack/marcador/internal/logging/events"
	"github.com/atomicstack/marcador/internal/rofi"
	"github.com/atomicstack/marcador/internal/rofi/pango"
)

// Context carries what the menus need at runtime.
type Context struct {
	Store    bookmark.Store
	Program  string
	Launcher rofi.Launcher
	Browser  string
	Theme    string
	Width    rofi.Width
}

// Action handles a decoded answer. index is rofi.NoIndex when the answer
// did not name a bookmark.
type Action func(ctx context.Context, mc Context, bookmarks []bookmark.Bookmark, index int) error

// Binding is a custom keybinding of the bookmark list.
type Binding struct {
	ID         int
	Chord      string
	Name       string
	Help       string
	NeedsIndex bool
	Action     Action
}

// Bindings returns the keybindings of the bookmark list in registration
// order. Binding i is reported by rofi as exit code rofi.KeybindingCode(ID).
func Bindings() []Binding {
	return []Binding{
		{ID: 1, Chord: "Alt+n", Name: "add", Help: "Add new bookmark", Action: addAction},
		{ID: 2, Chord: "Alt+d", Name: "delete", Help: "Delete bookmark", NeedsIndex: true, Action: deleteAction},
		{ID: 3, Chord: "Alt+c", Name: "copy", Help: "Copy URL", NeedsIndex: true, Action: copyAction},
	}
}

var (
	openBinding = Binding{Name: "open", NeedsIndex: true, Action: openAction}
	chordSpan   = pango.New("").Weight(pango.WeightBold)
)

// Hint renders the key help shown in the message bar.
func Hint(bindings []Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, chordSpan.BuildContent(pango.Escape(b.Chord))+": "+pango.Escape(b.Help))
	}
	return strings.Join(parts, " ")
}

// BindingFor returns the binding reported by code. Exit code 0 maps to the
// open action.
func BindingFor(bindings []Binding, code int) (Binding, bool) {
	if code == rofi.ExitAccept {
		return openBinding, true
	}
	id := rofi.KeybindingID(code)
	for _, b := range bindings {
		if b.ID == id {
			return b, true
		}
	}
	return Binding{}, false
}

// Launch shows the bookmark list and runs the action chosen by the user.
// Cancelling, an empty answer or an answer that names no bookmark end the
// menu without an error.
func Launch(ctx context.Context, mc Context) error {
	bookmarks, err := mc.Store.Bookmarks(ctx)
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}
	events.Bookmark.List(len(bookmarks))

	bindings := Bindings()
	m := mc.newMenu(bookmark.Labels(bookmarks)).
		Prompt("> ").
		Message(Hint(bindings)).
		MarkupRows()
	for _, b := range bindings {
		m.CustomKeybinding(b.ID, b.Chord)
	}

	events.Menu.Open("bookmarks", len(bookmarks), m.Args())
	code, index, err := m.RunIndex()
	if err != nil {
		if skipped("bookmarks", err) {
			return nil
		}
		return err
	}
	events.Menu.Result("bookmarks", code, index)

	binding, ok := BindingFor(bindings, code)
	if !ok {
		events.Menu.Skip("bookmarks", events.MenuOutcomeNotFound, fmt.Sprintf("no binding for exit code %d", code))
		return nil
	}
	if binding.NeedsIndex && index == rofi.NoIndex {
		events.Menu.Skip("bookmarks", events.MenuOutcomeNotFound, binding.Name)
		return nil
	}
	events.Menu.Dispatch(binding.Name, code, index)
	if err := binding.Action(ctx, mc, bookmarks, index); err != nil {
		return fmt.Errorf("%s: %w", binding.Name, err)
	}
	return nil
}

// Notify shows message in a rofi message dialog.
func Notify(mc Context, message string) error {
	m := mc.newMenu(nil)
	if _, err := m.MessageOnly(message); err != nil {
		return err
	}
	events.Menu.Open("message", 0, m.Args())
	if _, _, err := m.Run(); err != nil && !errors.Is(err, rofi.ErrInterrupted) && !errors.Is(err, rofi.ErrBlank) {
		return err
	}
	return nil
}

func (mc Context) newMenu(elements []string) *rofi.Menu {
	m := rofi.New(elements).Program(mc.Program).Launcher(mc.Launcher)
	if mc.Theme != "" {
		m.Theme(mc.Theme)
	}
	if mc.Width != rofi.NoWidth {
		// Width was validated when the configuration was loaded.
		_, _ = m.Width(mc.Width)
	}
	return m
}

// skipped traces and reports the answers that end a menu quietly.
func skipped(prompt string, err error) bool {
	switch {
	case errors.Is(err, rofi.ErrInterrupted):
		events.Menu.Skip(prompt, events.MenuOutcomeInterrupted, err.Error())
		return true
	case errors.Is(err, rofi.ErrBlank):
		events.Menu.Skip(prompt, events.MenuOutcomeBlank, "")
		return true
	}
	return false
}
