// Package rofi drives rofi (or any program speaking its dmenu protocol) as
// an external selection process.
//
// A Menu collects the candidate elements and display options. Each call to
// Run or RunIndex spawns an independent process, writes one element per
// line to its standard input, waits for it to exit and decodes the exit
// code and standard output:
//
//   - exit code 0, or 10..30 for custom keybindings, carries an answer;
//   - any other code is reported as ErrInterrupted;
//   - an accepted but empty answer is reported as ErrBlank;
//   - an index outside the element list is returned as NoIndex, not as an
//     error.
//
// Spawn and SpawnIndex expose the running process as a Child so callers can
// Kill it from another goroutine, for example to bound the wait.
package rofi

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultProgram is the binary started when no program is configured.
const DefaultProgram = "rofi"

// option is one flag of the extra argument list. Keyed options are replaced
// in place when set again; options with an empty key always append.
type option struct {
	key  string
	args []string
}

// Menu is a reusable rofi window definition. Setters mutate the menu and
// return it so calls can be chained.
type Menu struct {
	elements      []string
	message       string
	messageOnly   bool
	caseSensitive bool
	lines         int
	linesSet      bool
	width         Width
	format        Format
	options       []option
	sort          bool
	program       string
	launcher      Launcher
}

// New returns a menu listing elements. The slice is referenced, not copied;
// it must not change while a process spawned from the menu is running.
func New(elements []string) *Menu {
	return &Menu{
		elements: elements,
		width:    NoWidth,
		format:   Text,
		program:  DefaultProgram,
		launcher: ExecLauncher{},
	}
}

// NewMessage returns a message dialog without elements.
func NewMessage(message string) *Menu {
	m := New(nil)
	m.message = message
	m.messageOnly = true
	return m
}

// Elements returns the candidate elements.
func (m *Menu) Elements() []string {
	return m.elements
}

// Program sets the binary to start. An empty path restores DefaultProgram.
func (m *Menu) Program(path string) *Menu {
	if strings.TrimSpace(path) == "" {
		path = DefaultProgram
	}
	m.program = path
	return m
}

// Launcher replaces the process launcher. A nil launcher restores
// ExecLauncher.
func (m *Menu) Launcher(l Launcher) *Menu {
	if l == nil {
		l = ExecLauncher{}
	}
	m.launcher = l
	return m
}

// Prompt sets the text shown in front of the input field.
func (m *Menu) Prompt(prompt string) *Menu {
	return m.setOption("prompt", "-p", prompt)
}

// Message sets the message bar shown below the input field.
func (m *Menu) Message(message string) *Menu {
	return m.setOption("mesg", "-mesg", message)
}

// Theme selects ~/.config/rofi/{theme}.rasi.
func (m *Menu) Theme(theme string) *Menu {
	return m.setOption("theme", "-theme", theme)
}

// MarkupRows enables pango markup in the elements.
func (m *Menu) MarkupRows() *Menu {
	return m.setOption("markup-rows", "-markup-rows")
}

// Password hides the typed input.
func (m *Menu) Password() *Menu {
	return m.setOption("password", "-password")
}

// CustomKeybinding registers chord as -kb-custom-id. Pressing it makes the
// program exit with KeybindingCode(id). Bindings are passed in call order;
// repeated ids are not merged.
func (m *Menu) CustomKeybinding(id int, chord string) *Menu {
	m.options = append(m.options, option{args: []string{"-kb-custom-" + strconv.Itoa(id), chord}})
	return m
}

// MessageOnly turns the menu into a message dialog. It fails with ErrConfig
// when the menu has elements.
func (m *Menu) MessageOnly(message string) (*Menu, error) {
	if len(m.elements) > 0 {
		return m, &Error{Kind: ErrConfig, Msg: strconv.Itoa(len(m.elements)) + " elements"}
	}
	m.message = message
	m.messageOnly = true
	return m, nil
}

// CaseSensitive sets the matching policy. Matching is case-insensitive by
// default.
func (m *Menu) CaseSensitive(sensitive bool) *Menu {
	m.caseSensitive = sensitive
	return m
}

// Lines overrides the number of visible lines, which defaults to the number
// of elements.
func (m *Menu) Lines(n int) *Menu {
	m.lines = n
	m.linesSet = true
	return m
}

// Width overrides the window width. The menu is left unchanged when w is
// out of range.
func (m *Menu) Width(w Width) (*Menu, error) {
	if err := w.check(); err != nil {
		return m, err
	}
	m.width = w
	return m, nil
}

// Sort makes rofi sort matches by score.
func (m *Menu) Sort() *Menu {
	m.sort = true
	return m
}

// ReturnFormat sets the output format used by Run and Spawn. RunIndex and
// SpawnIndex always use Index.
func (m *Menu) ReturnFormat(format Format) *Menu {
	m.format = format
	return m
}

// Args returns the argument vector for the configured format.
func (m *Menu) Args() []string {
	return m.args(m.format)
}

func (m *Menu) args(format Format) []string {
	args := make([]string, 0, 16)
	if m.messageOnly {
		args = append(args, "-e", m.message)
	} else {
		args = append(args, "-dmenu")
	}
	for _, opt := range m.options {
		args = append(args, opt.args...)
	}
	args = append(args, "-format", format.Arg())
	lines := len(m.elements)
	if m.linesSet {
		lines = m.lines
	}
	args = append(args, "-l", strconv.Itoa(lines))
	if m.caseSensitive {
		args = append(args, "-case-sensitive")
	} else {
		args = append(args, "-i")
	}
	args = append(args, m.width.themeArgs()...)
	if m.sort {
		args = append(args, "-sort")
	}
	return args
}

// input encodes the elements as newline terminated lines.
func (m *Menu) input() []byte {
	size := 0
	for _, element := range m.elements {
		size += len(element) + 1
	}
	buf := make([]byte, 0, size)
	for _, element := range m.elements {
		buf = append(buf, element...)
		buf = append(buf, '\n')
	}
	return buf
}

// Spawn starts the program with the configured format.
func (m *Menu) Spawn() (*Child, error) {
	return m.spawn(m.format)
}

// SpawnIndex starts the program in Index format.
func (m *Menu) SpawnIndex() (*Child, error) {
	return m.spawn(Index)
}

func (m *Menu) spawn(format Format) (*Child, error) {
	launcher := m.launcher
	if launcher == nil {
		launcher = ExecLauncher{}
	}
	proc, err := launcher.Launch(m.program, m.args(format), m.input())
	if err != nil {
		var rerr *Error
		if errors.As(err, &rerr) {
			return nil, err
		}
		return nil, ioError("launch "+m.program, err)
	}
	return newChild(proc, len(m.elements)), nil
}

// Run shows the window and returns the exit code and the selected text.
func (m *Menu) Run() (int, string, error) {
	child, err := m.Spawn()
	if err != nil {
		return 0, "", err
	}
	return child.Wait()
}

// RunIndex shows the window and returns the exit code and the index of the
// selected element, or NoIndex when the answer is not an element.
func (m *Menu) RunIndex() (int, int, error) {
	child, err := m.SpawnIndex()
	if err != nil {
		return 0, NoIndex, err
	}
	return child.WaitIndex()
}

func (m *Menu) setOption(key string, args ...string) *Menu {
	for i := range m.options {
		if m.options[i].key == key {
			m.options[i].args = append([]string(nil), args...)
			return m
		}
	}
	m.options = append(m.options, option{key: key, args: append([]string(nil), args...)})
	return m
}
