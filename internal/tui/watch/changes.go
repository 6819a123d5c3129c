package watch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderChanges(changes []Change, theme Theme, width int) string {
	innerWidth := width - 4

	if len(changes) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			theme.Title.Render("LANGUAGE SWITCHES"),
			theme.Dim.Render("  Waiting for a switch..."),
		)
		return theme.Border.Width(innerWidth).Render(content)
	}

	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, fmt.Sprintf("%s %s → %s",
			theme.Dim.Render(c.At.Format("15:04:05")),
			renderLang(c.From, theme),
			renderLang(c.To, theme),
		))
	}

	body := lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("LANGUAGE SWITCHES"),
		body,
	)
	return theme.Border.Width(innerWidth).Render(content)
}
