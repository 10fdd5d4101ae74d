package components

import "github.com/charmbracelet/lipgloss"

var dialogFrame = frame.Width(44)

// ConfirmDialog renders a yes/no question.
func ConfirmDialog(title, message string) string {
	return dialogFrame.Render(
		titleStyle.Render(title) + "\n\n" +
			mutedStyle.Render(message) + "\n\n" +
			lipgloss.JoinHorizontal(lipgloss.Top, Hint("y", "confirm"), "  ", Hint("n", "cancel")),
	)
}
