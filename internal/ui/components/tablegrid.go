package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn is one column of a TableGrid. Width excludes separators.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const gridIndent = 2

var (
	gridRuleStyle      = lipgloss.NewStyle().Foreground(colorBorder)
	gridActiveStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorActiveRow).Bold(true)
	gridActiveSepStyle = lipgloss.NewStyle().Foreground(colorBorder).Background(colorActiveRow)
)

// TableGrid renders a header, a rule and rows, highlighting rows[active].
// Pass active < 0 for no highlight. The last column absorbs spare width so
// each line is exactly width cells wide.
func TableGrid(columns []TableColumn, rows [][]string, width, active int) string {
	if width <= 0 || len(columns) == 0 {
		return ""
	}
	border := lipgloss.RoundedBorder()
	cols := fitColumns(columns, width)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, gridRow(cols, headers, border.Left, width, labelStyle, gridRuleStyle))
	lines = append(lines, gridRule(cols, border.Middle, border.Top, width))
	for i, row := range rows {
		cell, sep := lipgloss.NewStyle(), gridRuleStyle
		if i == active {
			cell, sep = gridActiveStyle, gridActiveSepStyle
		}
		lines = append(lines, gridRow(cols, row, border.Left, width, cell, sep))
	}
	return strings.Join(lines, "\n")
}

func fitColumns(columns []TableColumn, width int) []TableColumn {
	cols := make([]TableColumn, len(columns))
	copy(cols, columns)
	used := len(cols) - 1
	for i := range cols {
		cols[i].Width = max(cols[i].Width, 1)
		used += cols[i].Width
	}
	avail := max(width-gridIndent, len(cols))
	last := &cols[len(cols)-1]
	last.Width = max(last.Width+avail-used, 1)
	return cols
}

func gridRow(cols []TableColumn, cells []string, sep string, width int, cell, sepStyle lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridIndent))
	for i, col := range cols {
		if i > 0 {
			b.WriteString(sepStyle.Inline(true).Render(sep))
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		b.WriteString(cell.Inline(true).Render(alignCell(text, col.Width, col.Align)))
	}
	return padRight(b.String(), width)
}

func gridRule(cols []TableColumn, cross, horiz string, width int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = strings.Repeat(horiz, col.Width)
	}
	line := strings.Repeat(" ", gridIndent) + strings.Join(parts, cross)
	return gridRuleStyle.Inline(true).Render(padRight(line, width))
}

func alignCell(text string, width int, align lipgloss.Position) string {
	text = ClampTextWidth(text, width)
	pad := width - lipgloss.Width(text)
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + text
	case lipgloss.Center:
		return strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)
	default:
		return text + strings.Repeat(" ", pad)
	}
}
