package ui

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	key := keyMsg.String()
	if id, ok := m.chords[key]; ok {
		return m.accept(id, false)
	}
	switch key {
	case "ctrl+c", "esc":
		return m.cancel()
	case "enter":
		return m.accept(0, false)
	case "alt+enter":
		return m.accept(0, true)
	}
	if m.opts.MessageOnly {
		return nil
	}
	if m.handleNavigation(key) {
		return nil
	}
	return m.handleTextInput(keyMsg)
}

func (m *Model) handleNavigation(key string) bool {
	var moved bool
	switch key {
	case "up", "ctrl+p", "shift+tab":
		moved = m.level.MoveCursorUp()
	case "down", "ctrl+n", "tab":
		moved = m.level.MoveCursorDown()
	case "pgup":
		moved = m.level.MoveCursorPageUp(m.visibleLines())
	case "pgdown":
		moved = m.level.MoveCursorPageDown(m.visibleLines())
	case "ctrl+home":
		moved = m.level.MoveCursorHome()
	case "ctrl+end":
		moved = m.level.MoveCursorEnd()
	default:
		return false
	}
	if moved {
		m.level.EnsureCursorVisible(m.visibleLines())
		m.traceCursor()
	}
	return true
}

func (m *Model) handleTextInput(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.level.SetFilter(value)
		m.level.EnsureCursorVisible(m.visibleLines())
		m.traceFilter()
	}
	return cmd
}
