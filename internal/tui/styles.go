package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	codeStyle   = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	statusOffStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusLinkingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusLinkedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
