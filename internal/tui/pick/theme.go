// Package pick is the terminal front end of a picker session.
package pick

import "github.com/charmbracelet/lipgloss"

// Theme keeps all picker styling in one place.
type Theme struct {
	Border   lipgloss.Style
	Title    lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

func NewDefaultTheme() Theme {
	purple := lipgloss.Color("#874BFD")

	return Theme{
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1),
		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5C07B")).
			Bold(true),
		Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true),
	}
}
