package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle    = lipgloss.NewStyle().Faint(true)
	statusStyle  = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Bold(true)
)

// applyTheme colours the styles for mode (auto|dark|light). auto asks the
// terminal.
func applyTheme(mode string) {
	dark := true
	switch mode {
	case "light":
		dark = false
	case "dark":
	default:
		dark = lipgloss.HasDarkBackground()
	}
	success, failure, accent := "2", "1", "4"
	if dark {
		success, failure, accent = "10", "9", "12"
	}
	labelStyle = labelStyle.Foreground(lipgloss.Color(accent))
	successStyle = successStyle.Foreground(lipgloss.Color(success))
	errorStyle = errorStyle.Foreground(lipgloss.Color(failure))
}
