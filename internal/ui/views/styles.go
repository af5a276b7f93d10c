package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("42")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("241") // Dim gray

	PromptWaitingStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	PromptDoneStyle    = lipgloss.NewStyle().Foreground(ColorSuccess)
	PromptAbortStyle   = lipgloss.NewStyle().Foreground(ColorError)
	HintStyle          = lipgloss.NewStyle().Foreground(ColorMuted).Faint(true)

	ReportHeaderStyle = lipgloss.NewStyle().Bold(true)
	ReportFromStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	ReportToStyle     = lipgloss.NewStyle().Foreground(ColorSuccess)
	ReportErrorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
