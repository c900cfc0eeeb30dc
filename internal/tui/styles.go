package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#8C103C")
	accent  = lipgloss.Color("#F5C518")
	muted   = lipgloss.Color("241")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(muted)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(muted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primary)
	nameStyle      = lipgloss.NewStyle().Bold(true)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary)
	badgeStyle     = lipgloss.NewStyle().Foreground(primary)
	priceStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	primaryTag     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	spinnerStyle   = lipgloss.NewStyle().Foreground(primary)
	helpStyle      = mutedStyle
)
