package ui

import (
	"reflect"
	"strings"

	"github.com/atomicstack/marcador/internal/dmenu"
	"github.com/atomicstack/marcador/internal/logging/events"
	"github.com/atomicstack/marcador/internal/rofi"
	"github.com/atomicstack/marcador/internal/rofi/pango"
	"github.com/atomicstack/marcador/internal/theme"
	uistate "github.com/atomicstack/marcador/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultPrompt = "dmenu"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the terminal selector.
type Model struct {
	opts     dmenu.Options
	elements []string
	level    *uistate.Level
	input    textinput.Model
	chords   map[string]int
	width    int
	height   int
	result   dmenu.Result
	done     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a selector over elements configured by opts.
func NewModel(opts dmenu.Options, elements []string) *Model {
	matching := uistate.Matching{CaseSensitive: opts.CaseSensitive, Sort: opts.Sort}
	m := &Model{
		opts:     opts,
		elements: elements,
		level:    uistate.NewLevel(uistate.NewItems(elements, opts.MarkupRows), matching),
		chords:   make(map[string]int, len(opts.Keybindings)),
		result:   dmenu.Cancel(),
	}
	for _, kb := range opts.Keybindings {
		key := dmenu.KeyName(kb.Chord)
		// the first binding of a chord wins
		if _, taken := m.chords[key]; !taken {
			m.chords[key] = kb.ID
		}
	}
	m.input = newInput(opts)
	m.registerHandlers()
	return m
}

func newInput(opts dmenu.Options) textinput.Model {
	ti := textinput.New()
	prompt := opts.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}
	if !strings.HasSuffix(prompt, " ") {
		prompt += " "
	}
	ti.Prompt = prompt
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	if opts.Password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}
	ti.Focus()
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	m.level.EnsureCursorVisible(m.visibleLines())
	return nil
}

// Result returns the outcome of the session. It is a cancellation until
// the user accepts or presses a custom keybinding.
func (m *Model) Result() dmenu.Result {
	return m.result
}

// Done reports whether the session has ended.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) finish(res dmenu.Result) tea.Cmd {
	m.result = res
	m.done = true
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	return m.finish(dmenu.Cancel())
}

// accept ends the session with the element under the cursor, or with the
// typed text when custom is set or nothing matches.
func (m *Model) accept(keybinding int, custom bool) tea.Cmd {
	res := dmenu.Result{
		Index:      rofi.NoIndex,
		Input:      m.input.Value(),
		Keybinding: keybinding,
	}
	if !custom && !m.opts.MessageOnly {
		if item, ok := m.level.Current(); ok {
			res.Index = item.Index
		}
	}
	return m.finish(res)
}

// visibleLines is the number of list rows that fit: -l when given, the
// element count otherwise, bounded by the terminal height.
func (m *Model) visibleLines() int {
	if m.opts.MessageOnly {
		return 0
	}
	lines := m.opts.Lines
	if lines < 0 {
		lines = len(m.elements)
	}
	if m.height > 0 {
		avail := m.height - m.chromeLines()
		if avail < 0 {
			avail = 0
		}
		if lines > avail {
			lines = avail
		}
	}
	return lines
}

func (m *Model) chromeLines() int {
	n := 1
	if msg := m.message(); msg != "" {
		n += strings.Count(msg, "\n") + 1
	}
	return n
}

// message is the message bar text. rofi renders it as pango markup.
func (m *Model) message() string {
	return pango.Strip(m.opts.Message)
}

func (m *Model) traceFilter() {
	events.Selector.Filter(m.level.Filter, len(m.level.Items))
}

func (m *Model) traceCursor() {
	events.Selector.Cursor(m.level.Cursor)
}
