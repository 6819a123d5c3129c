package watch

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattjoyce/hanpick/internal/client"
	"github.com/mattjoyce/hanpick/internal/protocol"
)

// --- Message types ---

// langMsg is an answered poll.
type langMsg struct {
	Code string
	At   time.Time
}

// busyMsg means the daemon accepted but did not answer in time, which
// happens while a picker session is open.
type busyMsg struct{ At time.Time }

type downMsg struct{ Err error }

type tickMsg time.Time

// --- Commands ---

// pollLang asks the daemon for its language with a bounded wait.
func pollLang(socket string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Send(ctx, socket, protocol.Request{Tag: protocol.TagLang})
		now := time.Now()
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return busyMsg{At: now}
		case err != nil:
			return downMsg{Err: err}
		}
		return langMsg{Code: string(resp), At: now}
	}
}

func tick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return tickMsg(t) })
}
