package watch

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pollEvery   = time.Second
	pollTimeout = 500 * time.Millisecond
	maxChanges  = 10
)

// Status is the daemon state as last observed.
type Status int

const (
	StatusUnknown Status = iota
	StatusUp
	StatusBusy
	StatusDown
)

// Change is one observed language switch.
type Change struct {
	At   time.Time
	From string
	To   string
}

// Model is the BubbleTea model for the watch TUI.
type Model struct {
	socket string

	width  int
	height int

	status    Status
	lang      string
	lastSeen  time.Time
	changes   []Change
	lastError string

	ticker  Ticker
	spinner Spinner
	theme   Theme
}

// New creates a watch model for the daemon at socket.
func New(socket string) Model {
	return Model{
		socket: socket,
		ticker: NewTicker(),
		theme:  NewDefaultTheme(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		pollLang(m.socket, pollTimeout),
		tea.EnterAltScreen,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case langMsg:
		m.status = StatusUp
		m.lastSeen = msg.At
		m.lastError = ""
		m.ticker.Tick()
		if m.lang != "" && msg.Code != m.lang {
			m.changes = append([]Change{{At: msg.At, From: m.lang, To: msg.Code}}, m.changes...)
			if len(m.changes) > maxChanges {
				m.changes = m.changes[:maxChanges]
			}
			m.spinner.OnChange(msg.At)
		}
		m.lang = msg.Code
		return m, tick(pollEvery)

	case busyMsg:
		m.status = StatusBusy
		return m, tick(pollEvery)

	case downMsg:
		m.status = StatusDown
		m.lastError = msg.Err.Error()
		return m, tick(pollEvery)

	case tickMsg:
		m.spinner.Decay(time.Time(msg))
		return m, pollLang(m.socket, pollTimeout)
	}

	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Connecting to " + m.socket + "..."
	}

	parts := []string{
		renderHeader(m, m.width),
		renderChanges(m.changes, m.theme, m.width),
	}
	if m.lastError != "" {
		parts = append(parts, m.theme.StatusDown.Render(fmt.Sprintf(" ⚠ %s", m.lastError)))
	}
	parts = append(parts, m.theme.Dim.Render(" [q] Quit"))

	return lipgloss.NewStyle().Margin(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, parts...),
	)
}
