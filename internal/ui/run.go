package ui

import (
	"context"
	"io"

	"github.com/atomicstack/marcador/internal/dmenu"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the selector on the terminal behind in and out and blocks until
// the user answers, cancels or ctx is done.
func Run(ctx context.Context, opts dmenu.Options, elements []string, in io.Reader, out io.Writer) (dmenu.Result, error) {
	model := NewModel(opts, elements)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return dmenu.Cancel(), err
	}
	if m, ok := final.(*Model); ok {
		return m.Result(), nil
	}
	return dmenu.Cancel(), nil
}
