package ui

import "github.com/charmbracelet/lipgloss"

// Palette used by the table renderer: an accent for headers, a muted tone
// for borders and hints, and one color for each non-Open state.
var (
	ColorAccent = lipgloss.Color("39")  // headers
	ColorDone   = lipgloss.Color("42")  // Done state
	ColorClosed = lipgloss.Color("240") // Closed state, dimmed
	ColorActive = lipgloss.Color("214") // Active state
	ColorMuted  = lipgloss.Color("245") // borders, hints
)

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	BorderStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	HintStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)

// StateStyle returns the style used to render a task's current-state
// label in the table.
func StateStyle(label string) lipgloss.Style {
	switch label {
	case "Done":
		return lipgloss.NewStyle().Foreground(ColorDone)
	case "Closed":
		return lipgloss.NewStyle().Foreground(ColorClosed)
	case "Active":
		return lipgloss.NewStyle().Foreground(ColorActive)
	default:
		return lipgloss.NewStyle()
	}
}
