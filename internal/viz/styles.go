package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Label  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Value  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Stable = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Warn   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	Hint   = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
)
