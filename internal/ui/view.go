package ui

import (
	"fmt"
	"strings"
	"unicode"

	uistate "github.com/atomicstack/marcador/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const itemIndicator = "▌"

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	lines := make([]string, 0, 8)
	if !m.opts.MessageOnly {
		lines = append(lines, m.promptLine())
	}
	if msg := m.message(); msg != "" {
		for _, line := range strings.Split(msg, "\n") {
			lines = append(lines, render(styles.Message, m.clip(line)))
		}
	}
	if !m.opts.MessageOnly {
		lines = append(lines, m.itemLines()...)
	}
	return strings.Join(lines, "\n")
}

// promptLine renders the filter input with the match counter right aligned.
func (m *Model) promptLine() string {
	input := m.input.View()
	counter := render(styles.Counter, fmt.Sprintf("%d/%d", len(m.level.Items), len(m.level.Full)))
	if m.width <= 0 {
		return input + "  " + counter
	}
	gap := m.width - lipgloss.Width(input) - lipgloss.Width(counter)
	if gap < 1 {
		return truncate.String(input, uint(m.width))
	}
	return input + strings.Repeat(" ", gap) + counter
}

func (m *Model) itemLines() []string {
	visible := m.visibleLines()
	if visible == 0 {
		return nil
	}
	current := m.level
	current.EnsureCursorVisible(visible)
	start := current.ViewportOffset
	end := start + visible
	if end > len(current.Items) {
		end = len(current.Items)
	}
	lines := make([]string, 0, end-start)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.buildItemLine(current.Items[idx], idx == current.Cursor))
	}
	return lines
}

// buildItemLine renders one candidate. The label is clipped to the window
// width and matched runes are highlighted.
func (m *Model) buildItemLine(item uistate.Item, selected bool) string {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	label := item.Label
	if m.width > 2 {
		label = truncate.StringWithTail(label, uint(m.width-2), "…")
	}
	text := highlight(label, m.level.Filter, m.opts.CaseSensitive, lineStyle)
	if m.width > 0 {
		if pad := m.width - 2 - lipgloss.Width(label); pad > 0 {
			text += render(lineStyle, strings.Repeat(" ", pad))
		}
	}
	return render(indicatorStyle, itemIndicator) + render(lineStyle, " ") + text
}

// highlight renders label with base, marking the runes that consume query
// in order with the match style.
func highlight(label, query string, caseSensitive bool, base *lipgloss.Style) string {
	q := []rune(strings.TrimSpace(query))
	if len(q) == 0 || styles.Match == nil {
		return render(base, label)
	}
	match := *styles.Match
	if base != nil {
		match = match.Inherit(*base)
	}
	var b strings.Builder
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			b.WriteString(render(base, plain.String()))
			plain.Reset()
		}
	}
	qi := 0
	for _, r := range label {
		if qi < len(q) && sameRune(r, q[qi], caseSensitive) {
			flush()
			b.WriteString(match.Render(string(r)))
			qi++
			continue
		}
		plain.WriteRune(r)
	}
	flush()
	return b.String()
}

func sameRune(a, b rune, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

func (m *Model) clip(line string) string {
	if m.width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(m.width), "…")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
