package dialog

import "github.com/charmbracelet/lipgloss/v2"

// Default overlay and frame styles. Callers override them per dialog through
// OverlayProps.Style or by styling their own content.
var (
	// OverlayBackdrop dims everything under an open dialog.
	OverlayBackdrop = lipgloss.NewStyle().
			Background(lipgloss.Color("0")).
			Foreground(lipgloss.Color("7"))

	// Frame is a plain rounded border for Text content.
	Frame = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(1, 2)
)
