package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	PrimaryColor   = lipgloss.Color("#3DDC84") // Android green
	SecondaryColor = lipgloss.Color("#04B575")
	ErrorColor     = lipgloss.Color("#FF0000")
	WarningColor   = lipgloss.Color("#FFCC00")
	SubtleColor    = lipgloss.Color("#626262")

	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Width(22)
)

// StatusStyle picks the style for a doctor check status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "ok":
		return SuccessStyle
	case "warning":
		return WarningStyle
	case "error":
		return ErrorStyle
	default:
		return SubtleStyle
	}
}
