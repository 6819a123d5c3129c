package pick

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu        sync.Mutex
	filters   []string
	activated []int
	closes    int
}

func (s *recordingSink) FilterChanged(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(s.filters, text)
}

func (s *recordingSink) Activate(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activated = append(s.activated, index)
}

func (s *recordingSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
}

var labels = []string{"假: 거짓 가", "家: 집 가", "價: 값 가"}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	return m
}

func TestEnterActivatesCursorRow(t *testing.T) {
	sink := &recordingSink{}
	m := newModel(sink, labels, "", []int{0, 1, 2}, NewDefaultTheme(), 10)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{1}, sink.activated)
}

func TestEnterWithNoRowsDoesNothing(t *testing.T) {
	sink := &recordingSink{}
	m := newModel(sink, labels, "zzz", []int{}, NewDefaultTheme(), 10)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, sink.activated)
	assert.Contains(t, m.View(), "no matches")
}

func TestTypingReportsFilter(t *testing.T) {
	sink := &recordingSink{}
	m := newModel(sink, labels, "", []int{0, 1, 2}, NewDefaultTheme(), 10)

	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("집")})
	require.Len(t, sink.filters, 1)
	assert.Equal(t, "집", sink.filters[0])
}

func TestVisibleMsgReplacesRows(t *testing.T) {
	sink := &recordingSink{}
	m := newModel(sink, labels, "", []int{0, 1, 2}, NewDefaultTheme(), 10)
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})

	next, _ := m.Update(visibleMsg{2})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{2}, sink.activated)
	assert.NotContains(t, m.View(), "거짓")
}

func TestEscClosesOnce(t *testing.T) {
	sink := &recordingSink{}
	m := newModel(sink, labels, "", []int{0, 1, 2}, NewDefaultTheme(), 10)

	press(m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, 1, sink.closes)
}

func TestCursorScrollsWindow(t *testing.T) {
	sink := &recordingSink{}
	m := newModel(sink, labels, "", []int{0, 1, 2}, NewDefaultTheme(), 2)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, 1, m.offset)

	m = press(m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.offset)
}
