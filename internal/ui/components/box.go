package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2)

	focusFrame = frame.BorderForeground(colorFocus)

	errorFrame = frame.BorderForeground(colorErrBorder)

	titleStyle     = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	valueStyle     = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	errHeaderStyle = lipgloss.NewStyle().Foreground(colorErrHeader).Bold(true)
	errBodyStyle   = lipgloss.NewStyle().Foreground(colorErrBody)
)

// boxWidth is 70% of the terminal, kept within [40, 80].
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	return min(max(width*70/100, 40), 80)
}

func fitWidth(width int) int {
	w := boxWidth(width)
	if width > 0 && w > width {
		return width
	}
	return w
}

// Box renders content inside a rounded border.
func Box(content string, width int) string {
	return frame.Width(fitWidth(width)).Render(content)
}

// FocusBox is Box with the focus border colour, used while editing.
func FocusBox(title, content string, width int) string {
	return titled(focusFrame, colorFocus, title, content, width)
}

// TitledBox renders a box with its title set into the top border.
func TitledBox(title, content string, width int) string {
	return titled(frame, colorBorder, title, content, width)
}

// ErrorBox renders a red box for failures.
func ErrorBox(title, message string, width int) string {
	body := errBodyStyle.Render(SanitizeText(message))
	if title != "" {
		body = errHeaderStyle.Render(title) + "\n\n" + body
	}
	return errorFrame.Width(fitWidth(width)).Render(body)
}

// BoxContentWidth is the usable width inside a Box (border 2, padding 4).
func BoxContentWidth(width int) int {
	return max(fitWidth(width)-6, 0)
}

func titled(style lipgloss.Style, borderColor lipgloss.Color, title, content string, width int) string {
	boxed := style.Width(fitWidth(width)).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	outer := lipgloss.Width(lines[0])
	if outer < 4 {
		return boxed
	}

	b := lipgloss.RoundedBorder()
	inner := outer - 2
	label := fmt.Sprintf(" [ %s ] ", SanitizeOneLine(title))
	if lipgloss.Width(label) > inner {
		label = truncateRunes(label, inner)
	}
	left := (inner - lipgloss.Width(label)) / 2
	right := max(inner-lipgloss.Width(label)-left, 0)

	edge := lipgloss.NewStyle().Foreground(borderColor)
	lines[0] = edge.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		titleStyle.Render(label) +
		edge.Render(strings.Repeat(b.Top, right)+b.TopRight)
	return strings.Join(lines, "\n")
}

// ClampTextWidth cuts text down to width cells after flattening it.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// InfoRow renders "label: value" for detail views.
func InfoRow(label, value string) string {
	return mutedStyle.Render(SanitizeOneLine(label)+": ") + valueStyle.Render(SanitizeOneLine(value))
}

// Indent prefixes every line with n spaces.
func Indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
