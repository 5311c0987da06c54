package console

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	overrideStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	inheritedStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)
