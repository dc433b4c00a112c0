package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#74c7ec")
	success = lipgloss.Color("#a6e3a1")
	warning = lipgloss.Color("#f9e2af")
	failure = lipgloss.Color("#f38ba8")
	muted   = lipgloss.Color("#a6adc8")

	clockStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(accent)
	stateStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(muted)
	barFull     = lipgloss.NewStyle().Foreground(success)
	barEmpty    = lipgloss.NewStyle().Foreground(muted)
	noticeStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)
)
