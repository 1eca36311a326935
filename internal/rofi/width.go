package rofi

import "fmt"

type widthKind int

const (
	widthNone widthKind = iota
	widthPercentage
	widthPixels
)

// Width overrides the window width configured by the rofi theme.
type Width struct {
	kind  widthKind
	value int
}

// NoWidth keeps the width from the theme.
var NoWidth = Width{}

// Percentage sets the width relative to the screen; p must be within 0..100.
func Percentage(p int) Width {
	return Width{kind: widthPercentage, value: p}
}

// Pixels sets an absolute width; p must be larger than 100.
func Pixels(p int) Width {
	return Width{kind: widthPixels, value: p}
}

func (w Width) check() error {
	switch w.kind {
	case widthPercentage:
		if w.value < 0 || w.value > 100 {
			return widthError(fmt.Sprintf("percentage must be between 0 and 100 (got %d)", w.value))
		}
	case widthPixels:
		if w.value <= 100 {
			return widthError(fmt.Sprintf("pixels must be larger than 100 (got %d)", w.value))
		}
	}
	return nil
}

// themeArgs returns the -theme-str override, or nil for NoWidth.
func (w Width) themeArgs() []string {
	switch w.kind {
	case widthPercentage:
		return []string{"-theme-str", fmt.Sprintf("window {width: %d%%;}", w.value)}
	case widthPixels:
		return []string{"-theme-str", fmt.Sprintf("window {width: %dpx;}", w.value)}
	}
	return nil
}

func (w Width) String() string {
	switch w.kind {
	case widthPercentage:
		return fmt.Sprintf("%d%%", w.value)
	case widthPixels:
		return fmt.Sprintf("%dpx", w.value)
	}
	return "none"
}

// MarshalText renders the width as in configuration files, e.g. "40%".
func (w Width) MarshalText() ([]byte, error) {
	if w.kind == widthNone {
		return nil, nil
	}
	return []byte(w.String()), nil
}
