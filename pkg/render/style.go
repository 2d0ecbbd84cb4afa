package render

import "github.com/charmbracelet/lipgloss"

var (
	// Text colors
	textPrimary = lipgloss.Color("#F8FAFC")
	textMuted   = lipgloss.Color("#94A3B8")
	accentColor = lipgloss.Color("#34D399")
	errorColor  = lipgloss.Color("#F87171")
)

// Styles for the summary printout
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(textPrimary).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			Underline(true)

	metaKeyStyle = lipgloss.NewStyle().
			Foreground(textMuted)

	errCellStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	naCellStyle = lipgloss.NewStyle().
			Foreground(textMuted)
)
