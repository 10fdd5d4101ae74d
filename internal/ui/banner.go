package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
      _                 _           _
  ___| | __ _ ___ ___  __| | ___  ___| | __
 / __| |/ _' / __/ __|/ _' |/ _ \/ __| |/ /
| (__| | (_| \__ \__ \ (_| |  __/\__ \   <
 \___|_|\__,_|___/___/\__,_|\___||___/_|\_\`

const bannerSubtitle = "Classroom administration • Terminal client"

// RenderBanner returns the styled banner with its subtitle and rule.
func RenderBanner() string {
	lines := strings.Split(strings.TrimPrefix(bannerArt, "\n"), "\n")

	width := lipgloss.Width(bannerSubtitle)
	var art strings.Builder
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
		art.WriteString(BannerStyle.Render(line))
		art.WriteString("\n")
	}

	centred := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	subtitle := centred.Foreground(ColorMuted).Render(bannerSubtitle)
	rule := centred.Foreground(ColorBorder).Render(strings.Repeat("─", lipgloss.Width(bannerSubtitle)))

	return "\n" + art.String() + "\n" + subtitle + "\n" + rule + "\n"
}
