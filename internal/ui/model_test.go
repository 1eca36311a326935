package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/marcador/internal/dmenu"
	"github.com/atomicstack/marcador/internal/rofi"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestHarness(opts dmenu.Options, elements ...string) *Harness {
	if opts.Lines == 0 && !opts.MessageOnly {
		opts.Lines = -1
	}
	return NewHarness(NewModel(opts, elements))
}

func outcome(t *testing.T, h *Harness) (string, int) {
	t.Helper()
	m := h.Model()
	if !m.Done() {
		t.Fatalf("expected session to have ended")
	}
	return dmenu.Render(m.opts, m.elements, m.Result())
}

func TestTypingFiltersAndEnterSelects(t *testing.T) {
	h := newTestHarness(dmenu.Options{Format: rofi.Index}, "https://go.dev", "https://example.org", "golang docs")
	h.Type("exa")
	if got := len(h.Model().level.Items); got != 1 {
		t.Fatalf("expected one match, got %d", got)
	}
	h.Press(tea.KeyEnter)
	out, code := outcome(t, h)
	if out != "1\n" || code != 0 {
		t.Fatalf("expected (1, 0), got (%q, %d)", out, code)
	}
}

func TestEnterWithoutMatchesReturnsInput(t *testing.T) {
	h := newTestHarness(dmenu.Options{Format: rofi.Text}, "alpha", "beta")
	h.Type("zzz")
	h.Press(tea.KeyEnter)
	res := h.Model().Result()
	if res.Index != rofi.NoIndex || res.Input != "zzz" {
		t.Fatalf("expected custom input, got %+v", res)
	}
	if out, _ := outcome(t, h); out != "zzz\n" {
		t.Fatalf("expected typed text, got %q", out)
	}
}

func TestAltEnterForcesCustomInput(t *testing.T) {
	h := newTestHarness(dmenu.Options{Format: rofi.Index}, "alpha")
	h.Type("al")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	if out, _ := outcome(t, h); out != "-1\n" {
		t.Fatalf("expected -1 for custom input, got %q", out)
	}
}

func TestEscapeCancels(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		h := newTestHarness(dmenu.Options{Format: rofi.Index}, "alpha")
		h.Press(key)
		out, code := outcome(t, h)
		if out != "" || code != dmenu.ExitCancel {
			t.Fatalf("key %v: expected cancel, got (%q, %d)", key, out, code)
		}
	}
}

func TestCustomKeybindingEndsWithItsCode(t *testing.T) {
	opts := dmenu.Options{
		Format: rofi.Index,
		Keybindings: []dmenu.Keybinding{
			{ID: 1, Chord: "Alt+n"},
			{ID: 2, Chord: "Alt+d"},
			{ID: 3, Chord: "Alt+d"},
		},
	}
	h := newTestHarness(opts, "alpha", "beta")
	h.Press(tea.KeyDown)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}, Alt: true})
	out, code := outcome(t, h)
	if out != "1\n" || code != rofi.KeybindingCode(2) {
		t.Fatalf("expected (1, %d), got (%q, %d)", rofi.KeybindingCode(2), out, code)
	}
}

func TestCursorWrapsAndViewportFollows(t *testing.T) {
	h := newTestHarness(dmenu.Options{Lines: 2}, "a", "b", "c", "d", "e")
	h.Press(tea.KeyDown)
	h.Press(tea.KeyDown)
	level := h.Model().level
	if level.Cursor != 2 || level.ViewportOffset != 1 {
		t.Fatalf("expected cursor 2 at offset 1, got %d/%d", level.Cursor, level.ViewportOffset)
	}
	view := h.View()
	if !strings.Contains(view, "▌ c") || strings.Contains(view, "▌ a") {
		t.Fatalf("unexpected viewport:\n%s", view)
	}
	h.Press(tea.KeyUp)
	h.Press(tea.KeyUp)
	h.Press(tea.KeyUp)
	if level.Cursor != 4 {
		t.Fatalf("expected cursor to wrap to 4, got %d", level.Cursor)
	}
}

func TestWindowHeightLimitsRows(t *testing.T) {
	h := newTestHarness(dmenu.Options{Message: "pick one"}, "a", "b", "c", "d", "e")
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 4})
	if got := h.Model().visibleLines(); got != 2 {
		t.Fatalf("expected 2 rows below prompt and message, got %d", got)
	}
	lines := strings.Split(h.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), h.View())
	}
	if !strings.Contains(lines[0], "5/5") {
		t.Fatalf("expected counter on the prompt line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "pick one") {
		t.Fatalf("expected message on the second line, got %q", lines[1])
	}
}

func TestMessageOnlyIgnoresTyping(t *testing.T) {
	h := newTestHarness(dmenu.Options{MessageOnly: true, Message: "<b>saved</b>"})
	h.Type("abc")
	if h.Model().Done() {
		t.Fatalf("expected typing not to end the dialog")
	}
	if view := h.View(); view != "saved" {
		t.Fatalf("expected stripped message only, got %q", view)
	}
	h.Press(tea.KeyEnter)
	if out, code := outcome(t, h); out != "" || code != 0 {
		t.Fatalf("expected empty accept, got (%q, %d)", out, code)
	}
}

func TestPasswordMasksInput(t *testing.T) {
	h := newTestHarness(dmenu.Options{Password: true, Format: rofi.UserInput})
	h.Type("secret")
	if strings.Contains(h.View(), "secret") {
		t.Fatalf("expected masked input, got %q", h.View())
	}
	h.Press(tea.KeyEnter)
	if out, _ := outcome(t, h); out != "secret\n" {
		t.Fatalf("expected typed secret on output, got %q", out)
	}
}

func TestMarkupRowsShowStrippedLabels(t *testing.T) {
	h := newTestHarness(dmenu.Options{MarkupRows: true, Format: rofi.Text}, "<b>bold</b> row")
	view := h.View()
	if !strings.Contains(view, "bold row") || strings.Contains(view, "<b>") {
		t.Fatalf("expected stripped label, got %q", view)
	}
	h.Type("bold")
	h.Press(tea.KeyEnter)
	if out, _ := outcome(t, h); out != "<b>bold</b> row\n" {
		t.Fatalf("expected raw element for -format s, got %q", out)
	}
}

func TestNoUpdatesAfterDone(t *testing.T) {
	h := newTestHarness(dmenu.Options{Format: rofi.Index}, "alpha", "beta")
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyDown)
	if h.Model().Result().Index != 0 {
		t.Fatalf("expected result to be frozen, got %+v", h.Model().Result())
	}
	if h.View() != "" {
		t.Fatalf("expected empty view after exit")
	}
}
