package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")  // Cyan for industry additions
	ColorBlue      = lipgloss.Color("75")  // Blue for archetype methodologies

	// Base Styles
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleSectionTitle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)

	// Selection lists
	StyleSelectTitle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSelectActive = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleSelectNormal = lipgloss.NewStyle().Foreground(ColorText)
	StyleSelectDim    = lipgloss.NewStyle().Foreground(ColorSecondary)

	// Recommendation provenance
	StyleFromArchetype = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleFromIndustry  = lipgloss.NewStyle().Foreground(ColorCyan)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
