package rofi

import "fmt"

// Format selects what the program prints for the chosen entry.
type Format int

const (
	// Text is the entry as supplied, markup included.
	Text Format = iota
	// StrippedText is the entry with markup removed.
	StrippedText
	// UserInput is the exact text typed by the user.
	UserInput
	// Index is the position of the entry in the element list.
	Index
)

var formatTokens = map[Format]string{
	Text:         "s",
	StrippedText: "p",
	UserInput:    "f",
	Index:        "i",
}

// Formats lists every declared format.
func Formats() []Format {
	return []Format{Text, StrippedText, UserInput, Index}
}

// Arg returns the value passed to -format.
func (f Format) Arg() string {
	if token, ok := formatTokens[f]; ok {
		return token
	}
	return formatTokens[Text]
}

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case StrippedText:
		return "stripped"
	case UserInput:
		return "input"
	case Index:
		return "index"
	}
	return fmt.Sprintf("format(%d)", int(f))
}
