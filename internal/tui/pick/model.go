package pick

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mattjoyce/hanpick/internal/picker"
)

// visibleMsg replaces the visible row list after a filter change.
type visibleMsg []int

// Model renders one session. It never filters on its own: it reports the
// filter text to the sink and waits for a visibleMsg.
type Model struct {
	sink    picker.Sink
	labels  []string
	visible []int
	cursor  int
	offset  int

	input  textinput.Model
	theme  Theme
	title  string
	rows   int
	width  int
	closed bool
}

func newModel(sink picker.Sink, labels []string, filter string, visible []int, theme Theme, rows int) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "filter"
	in.SetValue(filter)
	in.Focus()

	if rows < 1 {
		rows = 1
	}
	return Model{
		sink:    sink,
		labels:  labels,
		visible: visible,
		input:   in,
		theme:   theme,
		title:   "HANPICK",
		rows:    rows,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case visibleMsg:
		m.visible = msg
		m.cursor = 0
		m.offset = 0
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if len(m.visible) > 0 {
				m.sink.Activate(m.visible[m.cursor])
			}
			return m, nil
		case "esc", "ctrl+c":
			if !m.closed {
				m.closed = true
				m.sink.Close()
			}
			return m, nil
		case "up", "ctrl+p":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.move(1)
			return m, nil
		case "pgup":
			m.move(-m.rows)
			return m, nil
		case "pgdown":
			m.move(m.rows)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.sink.FilterChanged(after)
	}
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.visible)-1)
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.rows {
		m.offset = m.cursor - m.rows + 1
	}
}

func (m Model) View() string {
	var lines []string
	if len(m.visible) == 0 {
		lines = append(lines, m.theme.Empty.Render("  no matches"))
	}
	end := min(m.offset+m.rows, len(m.visible))
	for i := m.offset; i < end; i++ {
		idx := m.visible[i]
		if idx < 0 || idx >= len(m.labels) {
			continue
		}
		if i == m.cursor {
			lines = append(lines, m.theme.Selected.Render("▸ "+m.labels[idx]))
		} else {
			lines = append(lines, "  "+m.labels[idx])
		}
	}

	count := m.theme.Dim.Render(fmt.Sprintf("%d/%d", len(m.visible), len(m.labels)))
	help := m.theme.Dim.Render(" [enter] Select • [esc] Cancel • [↑/↓] Move")

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(m.title)+" "+count,
		m.input.View(),
		strings.Join(lines, "\n"),
		help,
	)

	border := m.theme.Border
	if m.width > 4 {
		border = border.Width(m.width - 4)
	}
	return border.Render(content)
}
