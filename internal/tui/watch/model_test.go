package watch

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestLangPollsRecordSwitches(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m := New("/tmp/kime_window.sock")

	m = update(t, m, langMsg{Code: "eng", At: base})
	assert.Equal(t, StatusUp, m.status)
	assert.Empty(t, m.changes)

	m = update(t, m, langMsg{Code: "eng", At: base.Add(time.Second)})
	assert.Empty(t, m.changes)

	m = update(t, m, langMsg{Code: "han", At: base.Add(2 * time.Second)})
	require.Len(t, m.changes, 1)
	assert.Equal(t, Change{At: base.Add(2 * time.Second), From: "eng", To: "han"}, m.changes[0])
	assert.Equal(t, 5, m.spinner.Dots())
}

func TestChangeHistoryIsCapped(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m := New("/tmp/kime_window.sock")

	codes := []string{"eng", "han"}
	for i := range maxChanges + 5 {
		m = update(t, m, langMsg{Code: codes[i%2], At: base.Add(time.Duration(i) * time.Second)})
	}
	assert.Len(t, m.changes, maxChanges)
	assert.True(t, m.changes[0].At.After(m.changes[1].At))
}

func TestBusyAndDown(t *testing.T) {
	m := New("/tmp/kime_window.sock")

	m = update(t, m, busyMsg{At: time.Now()})
	assert.Equal(t, StatusBusy, m.status)

	m = update(t, m, downMsg{Err: errors.New("connection refused")})
	assert.Equal(t, StatusDown, m.status)
	assert.Equal(t, "connection refused", m.lastError)

	m = update(t, m, langMsg{Code: "eng", At: time.Now()})
	assert.Equal(t, StatusUp, m.status)
	assert.Empty(t, m.lastError)
}

func TestSpinnerDecays(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	var s Spinner
	s.OnChange(base)

	s.Decay(base.Add(3 * time.Second))
	assert.Equal(t, 4, s.Dots())
	s.Decay(base.Add(11 * time.Second))
	assert.Equal(t, 0, s.Dots())
}

func TestViewRendersLanguage(t *testing.T) {
	m := New("/tmp/kime_window.sock")
	assert.Contains(t, m.View(), "Connecting to /tmp/kime_window.sock")

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, langMsg{Code: "han", At: time.Now()})

	view := m.View()
	assert.Contains(t, view, "HANPICK WATCH")
	assert.Contains(t, view, "han")
	assert.Contains(t, view, "ANSWERING")
}

func TestQuitKey(t *testing.T) {
	m := New("/tmp/kime_window.sock")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
