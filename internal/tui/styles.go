package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true)
	freeStyle  = lipgloss.NewStyle().Faint(true)
	takenStyle = lipgloss.NewStyle().Bold(true).Strikethrough(true)
)
