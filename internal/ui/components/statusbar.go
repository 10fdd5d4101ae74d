package components

import "github.com/charmbracelet/lipgloss"

var (
	hintDescStyle = lipgloss.NewStyle().Foreground(colorMuted)
	keyCapStyle   = lipgloss.NewStyle().
			Foreground(colorInk).
			Background(colorKeyCap).
			Bold(true).
			Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)
)

// Hint formats one key hint, e.g. "Save ctrl+s".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

// StatusBar lays hints out in bordered segments, wrapping rows to width.
func StatusBar(hints []string, width int) string {
	segments := make([]string, len(hints))
	for i, h := range hints {
		segments[i] = segmentStyle.Render(h)
	}
	bar := lipgloss.NewStyle().PaddingLeft(2)
	if width <= 0 {
		return bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, segments...))
	}

	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	rowWidth := 0
	for _, row := range rows {
		rowWidth = max(rowWidth, lipgloss.Width(row))
	}
	centred := make([]string, len(rows))
	for i, row := range rows {
		centred[i] = lipgloss.PlaceHorizontal(rowWidth, lipgloss.Center, row)
	}
	return bar.Width(width).Align(lipgloss.Center).Render(lipgloss.JoinVertical(lipgloss.Left, centred...))
}

func wrapSegments(segments []string, width int) []string {
	var rows []string
	var row []string
	used := 0
	for _, seg := range segments {
		w := lipgloss.Width(seg)
		if used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, seg)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return rows
}
