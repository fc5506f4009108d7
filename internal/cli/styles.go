package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the wizard screens and reports.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Total   lipgloss.Style
	Panel   lipgloss.Style
}

// NewStyles builds the style set. With noColor every style renders plain
// text.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain, Success: plain, Error: plain,
			Muted: plain, Accent: plain, Total: plain,
			Panel: plain,
		}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Total:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
