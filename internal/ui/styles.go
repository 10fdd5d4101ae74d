package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary   = lipgloss.Color("#4f9d8f") // teal
	ColorSecondary = lipgloss.Color("#6b8fb3") // slate blue
	ColorAccent    = lipgloss.Color("#c9a45c") // chalk yellow
	ColorInk       = lipgloss.Color("#15181e")
	ColorText      = lipgloss.Color("#dcdfe4")
	ColorMuted     = lipgloss.Color("#98a1b3")
	ColorSuccess   = lipgloss.Color("#5fa36f")
	ColorError     = lipgloss.Color("#e06c75")
	ColorBorder    = lipgloss.Color("#2b3a42")
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Underline(true)

	ModeBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorInk).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)
)
