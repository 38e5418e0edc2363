package view

import "github.com/charmbracelet/lipgloss"

// Layout constants mirror a single cycle column's rendered width.
const (
	cellW     = 11
	labelW    = 9
	gateBoxW  = 7
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	cycleHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#565f89"))

	operandLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	cursorGateStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ff9e64"))

	wireStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ece6a"))
)
