package pick

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mattjoyce/hanpick/internal/picker"
)

// hideTimeout bounds how long Hide waits for the terminal to be restored.
const hideTimeout = 2 * time.Second

// View shows picker sessions on a terminal device. One View lives for the
// whole process; each session gets its own bubbletea program.
type View struct {
	tty    string
	rows   int
	theme  Theme
	logger *slog.Logger

	mu   sync.Mutex
	prog *tea.Program
	done chan struct{}
}

// NewView returns a View drawing on the terminal at tty with at most rows
// candidate rows.
func NewView(tty string, rows int, logger *slog.Logger) *View {
	return &View{tty: tty, rows: rows, theme: NewDefaultTheme(), logger: logger}
}

// CheckTerminal opens tty and reports its size. Used by doctor.
func CheckTerminal(tty string) (width, height int, err error) {
	f, err := os.OpenFile(tty, os.O_RDWR, 0)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	if !term.IsTerminal(int(f.Fd())) {
		return 0, 0, fmt.Errorf("%s is not a terminal", tty)
	}
	return term.GetSize(int(f.Fd()))
}

func (v *View) Show(sink picker.Sink, labels []string, filter string, visible []int) error {
	f, err := os.OpenFile(v.tty, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", v.tty, err)
	}
	if !term.IsTerminal(int(f.Fd())) {
		_ = f.Close()
		return fmt.Errorf("%s is not a terminal", v.tty)
	}

	rows := v.rows
	if _, h, err := term.GetSize(int(f.Fd())); err == nil && h-6 < rows {
		rows = h - 6
	}

	m := newModel(sink, labels, filter, visible, v.theme, rows)
	prog := tea.NewProgram(m,
		tea.WithInput(f),
		tea.WithOutput(f),
		tea.WithAltScreen(),
	)
	done := make(chan struct{})

	v.mu.Lock()
	v.prog, v.done = prog, done
	v.mu.Unlock()

	go func() {
		defer close(done)
		defer f.Close()
		if _, err := prog.Run(); err != nil {
			v.logger.Warn("picker terminal failed", "tty", v.tty, "error", err)
		}
		// The program also ends when the terminal goes away; treat that as
		// the window being closed. After Hide this is a no-op.
		sink.Close()
	}()
	return nil
}

func (v *View) Update(visible []int) {
	v.mu.Lock()
	prog := v.prog
	v.mu.Unlock()
	if prog != nil {
		prog.Send(visibleMsg(visible))
	}
}

func (v *View) Hide() {
	v.mu.Lock()
	prog, done := v.prog, v.done
	v.prog, v.done = nil, nil
	v.mu.Unlock()
	if prog == nil {
		return
	}

	prog.Quit()
	select {
	case <-done:
	case <-time.After(hideTimeout):
		v.logger.Warn("picker terminal did not exit", "tty", v.tty)
		prog.Kill()
	}
}

var _ picker.View = (*View)(nil)
