package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func renderHeader(m Model, width int) string {
	theme := m.theme
	innerWidth := width - 4

	var statusText string
	switch m.status {
	case StatusUp:
		statusText = theme.StatusOK.Render("ANSWERING")
	case StatusBusy:
		statusText = theme.StatusBusy.Render("PICKER OPEN")
	case StatusDown:
		statusText = theme.StatusDown.Render("NOT RUNNING")
	default:
		statusText = theme.Dim.Render("CONNECTING")
	}

	titleText := fmt.Sprintf(" HANPICK WATCH %s", theme.Highlight.Render(m.ticker.Current()))
	clock := theme.Dim.Render(time.Now().Format("15:04:05"))
	pad := max(innerWidth-lipgloss.Width(titleText)-lipgloss.Width(clock)-4, 1)
	titleLine := titleText + strings.Repeat(" ", pad) + clock + " "

	statsLine := fmt.Sprintf(" %s  Language: %s  Socket: %s",
		statusText, renderLang(m.lang, theme), m.socket)

	lastSeen := "never"
	if !m.lastSeen.IsZero() {
		lastSeen = m.lastSeen.Format("15:04:05")
	}
	activityLine := fmt.Sprintf(" Last answer: %s %s", lastSeen, m.spinner.Render(theme))

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, statsLine, activityLine)
	return theme.Border.Width(innerWidth).Render(content)
}

func renderLang(code string, theme Theme) string {
	switch code {
	case "han":
		return theme.LangHan.Render("한 han")
	case "eng":
		return theme.LangEng.Render("A eng")
	case "":
		return theme.Dim.Render("-")
	}
	return theme.Dim.Render(code)
}
