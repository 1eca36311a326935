// Package dmenu implements the command line and output side of the rofi
// dmenu protocol for marcador-menu, the terminal selector.
package dmenu

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/atomicstack/marcador/internal/rofi"
)

// Keybinding is a -kb-custom-N chord.
type Keybinding struct {
	ID    int
	Chord string
}

// Options are the parsed rofi flags.
type Options struct {
	MessageOnly   bool
	Message       string
	Prompt        string
	Format        rofi.Format
	Lines         int
	CaseSensitive bool
	Width         rofi.Width
	Theme         string
	Sort          bool
	MarkupRows    bool
	Password      bool
	Keybindings   []Keybinding
}

// ErrUsage is wrapped by every parse failure.
var ErrUsage = errors.New("usage")

var (
	kbCustom   = regexp.MustCompile(`^-kb-custom-([0-9]+)$`)
	themeWidth = regexp.MustCompile(`width:\s*([0-9]+)\s*(%|px)`)
)

// Parse reads the flags rofi accepts in dmenu mode. Lines is -1 when -l is
// absent. Flags that only affect rofi's appearance are accepted and ignored.
func Parse(args []string) (Options, error) {
	opts := Options{Format: rofi.Text, Lines: -1, Width: rofi.NoWidth}
	mode := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%w: %s needs a value", ErrUsage, arg)
			}
			i++
			return args[i], nil
		}
		var err error
		switch arg {
		case "-dmenu":
			mode = true
		case "-e":
			opts.MessageOnly = true
			mode = true
			opts.Message, err = value()
		case "-p":
			opts.Prompt, err = value()
		case "-mesg":
			opts.Message, err = value()
		case "-format":
			var token string
			if token, err = value(); err == nil {
				opts.Format, err = parseFormat(token)
			}
		case "-l":
			var raw string
			if raw, err = value(); err == nil {
				opts.Lines, err = strconv.Atoi(raw)
				if err != nil || opts.Lines < 0 {
					err = fmt.Errorf("%w: invalid line count %q", ErrUsage, raw)
				}
			}
		case "-i":
			opts.CaseSensitive = false
		case "-case-sensitive":
			opts.CaseSensitive = true
		case "-theme-str":
			var raw string
			if raw, err = value(); err == nil {
				opts.Width = parseThemeWidth(raw, opts.Width)
			}
		case "-theme":
			opts.Theme, err = value()
		case "-sort":
			opts.Sort = true
		case "-markup-rows":
			opts.MarkupRows = true
		case "-password":
			opts.Password = true
		default:
			m := kbCustom.FindStringSubmatch(arg)
			if m == nil {
				return opts, fmt.Errorf("%w: unknown flag %q", ErrUsage, arg)
			}
			id, _ := strconv.Atoi(m[1])
			if id < 1 || rofi.KeybindingCode(id) > rofi.ExitCustomLast {
				return opts, fmt.Errorf("%w: keybinding id %d out of range", ErrUsage, id)
			}
			var chord string
			if chord, err = value(); err == nil {
				opts.Keybindings = append(opts.Keybindings, Keybinding{ID: id, Chord: chord})
			}
		}
		if err != nil {
			return opts, err
		}
	}
	if !mode {
		return opts, fmt.Errorf("%w: either -dmenu or -e is required", ErrUsage)
	}
	return opts, nil
}

func parseFormat(token string) (rofi.Format, error) {
	for _, f := range rofi.Formats() {
		if f.Arg() == token {
			return f, nil
		}
	}
	return rofi.Text, fmt.Errorf("%w: unsupported format %q", ErrUsage, token)
}

// parseThemeWidth extracts "width: N%" or "width: Npx" from a theme string.
// Other theme properties are ignored.
func parseThemeWidth(raw string, fallback rofi.Width) rofi.Width {
	m := themeWidth.FindStringSubmatch(raw)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	if m[2] == "%" {
		return rofi.Percentage(n)
	}
	return rofi.Pixels(n)
}

// KeyName converts a rofi chord such as "Alt+n" or "Control+Shift+d" into
// the key string reported by bubbletea ("alt+n", "ctrl+D").
func KeyName(chord string) string {
	parts := strings.Split(chord, "+")
	key := parts[len(parts)-1]
	var alt, ctrl, shift bool
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(mod)) {
		case "alt", "mod1", "meta":
			alt = true
		case "control", "ctrl":
			ctrl = true
		case "shift":
			shift = true
		}
	}
	switch strings.ToLower(key) {
	case "return", "enter", "kp_enter":
		key = "enter"
	case "tab", "iso_left_tab":
		key = "tab"
	case "space":
		key = " "
	case "delete":
		key = "delete"
	case "backspace":
		key = "backspace"
	default:
		key = strings.ToLower(key)
		if shift && len([]rune(key)) == 1 {
			key = strings.ToUpper(key)
			shift = false
		}
	}
	var b strings.Builder
	if ctrl {
		b.WriteString("ctrl+")
	}
	if alt {
		b.WriteString("alt+")
	}
	if shift {
		b.WriteString("shift+")
	}
	b.WriteString(key)
	return b.String()
}
