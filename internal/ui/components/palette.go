package components

import "github.com/charmbracelet/lipgloss"

// Shared with the ui package theme.
const (
	colorBorder    = lipgloss.Color("#2b3a42")
	colorFocus     = lipgloss.Color("#4f9d8f")
	colorHeader    = lipgloss.Color("#4f9d8f")
	colorLabel     = lipgloss.Color("#6b8fb3")
	colorText      = lipgloss.Color("#dcdfe4")
	colorMuted     = lipgloss.Color("#98a1b3")
	colorInk       = lipgloss.Color("#15181e")
	colorKeyCap    = lipgloss.Color("#8a93a6")
	colorActiveRow = lipgloss.Color("#1d2630")
	colorErrBorder = lipgloss.Color("#7a2f3a")
	colorErrHeader = lipgloss.Color("#e06c75")
	colorErrBody   = lipgloss.Color("#d6b5b5")
)
