package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared by the terminal selector.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Match                 *lipgloss.Style
	Message               *lipgloss.Style
	Counter               *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	Cursor                *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Match: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true),
	),
	Message: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Counter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// ListStyles colours the columns of the list command.
type ListStyles struct {
	Header      lipgloss.Style
	ID          lipgloss.Style
	Description lipgloss.Style
	URL         lipgloss.Style
	Tags        lipgloss.Style
}

// List returns list styles bound to r, so colour output follows the
// capabilities of the writer r was created for.
func List(r *lipgloss.Renderer) ListStyles {
	return ListStyles{
		Header:      r.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		ID:          r.NewStyle().Foreground(lipgloss.Color("6")),
		Description: r.NewStyle().Foreground(lipgloss.Color("2")),
		URL:         r.NewStyle().Foreground(lipgloss.Color("3")),
		Tags:        r.NewStyle().Foreground(lipgloss.Color("4")),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
