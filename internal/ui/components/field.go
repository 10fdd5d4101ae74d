package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	fieldFocusStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	fieldInvalidStyle = lipgloss.NewStyle().Foreground(colorErrHeader)
)

// FormField renders a labelled input. A non-empty problem marks the field
// invalid and is printed beneath the input.
func FormField(label, input string, focused bool, problem string) string {
	head := mutedStyle.Render("  " + label + ":")
	if focused {
		head = fieldFocusStyle.Render("> " + label + ":")
	}
	if problem != "" {
		head += " " + fieldInvalidStyle.Render("(invalid)")
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(Indent(input, 4))
	if problem != "" {
		b.WriteString("\n")
		b.WriteString(Indent(fieldInvalidStyle.Render(SanitizeOneLine(problem)), 4))
	}
	return b.String()
}
