// Package watch is the live terminal view of a running daemon: which
// language it reports, whether it answers, and recent language switches.
package watch

import "github.com/charmbracelet/lipgloss"

// Theme centralizes all styling for the watch TUI.
type Theme struct {
	// Daemon status
	StatusOK   lipgloss.Style
	StatusBusy lipgloss.Style
	StatusDown lipgloss.Style

	// Language badges
	LangHan lipgloss.Style
	LangEng lipgloss.Style

	Border    lipgloss.Style
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style

	TickerActive   lipgloss.Style
	TickerInactive lipgloss.Style
}

func NewDefaultTheme() Theme {
	purple := lipgloss.Color("#874BFD")

	return Theme{
		StatusOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		StatusBusy: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		StatusDown: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),

		LangHan: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E06C75")),
		LangEng: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#61AFEF")),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")),

		TickerActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		TickerInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
	}
}
