package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorLime     = "#76FF03"
	ColorYellow   = "#FFD600"
	ColorRed      = "#FF5252"
	ColorDarkGray = "#616161"
	ColorCyan     = "#00E5FF"
)

// Styles holds the lipgloss styles used by CLI output.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Value   lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCyan)),
	}
}
