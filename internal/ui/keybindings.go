package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Helpers ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	s := msg.String()
	for _, k := range keys {
		if s == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEsc || isKey(msg, "esc")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up", "k")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down", "j")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter")
}

func isSave(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+s")
}

func isNextField(msg tea.KeyMsg) bool {
	return isKey(msg, "tab", "down")
}

func isPrevField(msg tea.KeyMsg) bool {
	return isKey(msg, "shift+tab", "up")
}
