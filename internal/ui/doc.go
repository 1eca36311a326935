// Package ui contains the Bubble Tea program behind marcador-menu, a
// terminal stand-in for rofi's dmenu mode.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Key presses and
//     window resizes are routed through a typed handler registry; everything
//     else (cursor blink ticks) goes to the filter input.
//   - Custom keybindings, accept and cancel keys end the session. The model
//     records a dmenu.Result and returns tea.Quit; dmenu.Render turns the
//     result into rofi's output and exit code.
//   - Other keys either move the cursor or edit the filter, which refilters
//     the candidates.
//
// State ownership:
//   - The candidate list, filter, cursor and viewport live in
//     internal/ui/state.Level so they can be tested without a terminal.
//   - The filter text itself is owned by a bubbles textinput, which also
//     handles password masking.
package ui
