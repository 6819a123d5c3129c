package picker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hanpick/internal/candidate"
	"github.com/mattjoyce/hanpick/internal/events"
	"github.com/mattjoyce/hanpick/internal/log"
	"github.com/mattjoyce/hanpick/internal/loop"
)

type fakeView struct {
	mu      sync.Mutex
	script  func(s Sink, labels []string, visible []int)
	showErr error

	shows   int
	hides   int
	filters []string
	sinks   []Sink
	updates chan []int
}

func newFakeView(script func(s Sink, labels []string, visible []int)) *fakeView {
	return &fakeView{script: script, updates: make(chan []int, 16)}
}

func (v *fakeView) Show(s Sink, labels []string, filter string, visible []int) error {
	v.mu.Lock()
	v.shows++
	v.sinks = append(v.sinks, s)
	v.filters = append(v.filters, filter)
	script, showErr := v.script, v.showErr
	v.mu.Unlock()

	if showErr != nil {
		return showErr
	}
	if script != nil {
		go script(s, labels, visible)
	}
	return nil
}

func (v *fakeView) Update(visible []int) { v.updates <- visible }

func (v *fakeView) Hide() {
	v.mu.Lock()
	v.hides++
	v.mu.Unlock()
}

var gaEntries = []candidate.Entry{
	{Value: "假", Description: "거짓 가"},
	{Value: "家", Description: "집 가"},
	{Value: "價", Description: "값 가"},
}

func newPicker(t *testing.T, view View, hub *events.Hub) (*Picker, *loop.Loop) {
	t.Helper()
	lp := loop.New(0)
	t.Cleanup(lp.Close)
	return New(lp, view, hub, log.Discard()), lp
}

func TestMatch(t *testing.T) {
	assert.True(t, Match("家: 집 가", "집"))
	assert.True(t, Match("家: 집 가", ""))
	assert.False(t, Match("家: 집 가", "값"))
	assert.False(t, Match("thumbs up", "Thumbs"))
}

func TestPickCommitsActivatedEntry(t *testing.T) {
	view := newFakeView(func(s Sink, labels []string, visible []int) {
		s.Activate(visible[1])
	})
	p, _ := newPicker(t, view, nil)

	value, ok, err := p.Pick(context.Background(), "hanja", gaEntries, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "家", value)
	assert.Nil(t, p.active)
	assert.Equal(t, 1, view.hides)
}

func TestPickShowsLabelsAndInitialFilter(t *testing.T) {
	var (
		gotLabels  []string
		gotVisible []int
	)
	view := newFakeView(func(s Sink, labels []string, visible []int) {
		gotLabels, gotVisible = labels, visible
		s.Close()
	})
	p, _ := newPicker(t, view, nil)

	_, ok, err := p.Pick(context.Background(), "hanja", gaEntries, "값")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"假: 거짓 가", "家: 집 가", "價: 값 가"}, gotLabels)
	assert.Equal(t, []int{2}, gotVisible)
	assert.Equal(t, []string{"값"}, view.filters)
}

func TestPickFilterNarrowsVisibleRows(t *testing.T) {
	var view *fakeView
	view = newFakeView(func(s Sink, labels []string, visible []int) {
		s.FilterChanged("집")
		narrowed := <-view.updates
		s.Activate(narrowed[0])
	})
	p, _ := newPicker(t, view, nil)

	value, ok, err := p.Pick(context.Background(), "hanja", gaEntries, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "家", value)
}

func TestPickIgnoresHiddenRow(t *testing.T) {
	var view *fakeView
	view = newFakeView(func(s Sink, labels []string, visible []int) {
		s.FilterChanged("nothing matches")
		<-view.updates
		s.Activate(0)
		s.Activate(99)
		s.Close()
	})
	p, _ := newPicker(t, view, nil)

	value, ok, err := p.Pick(context.Background(), "hanja", gaEntries, "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestPickCancelledByClose(t *testing.T) {
	view := newFakeView(func(s Sink, _ []string, _ []int) { s.Close() })
	p, _ := newPicker(t, view, nil)

	value, ok, err := p.Pick(context.Background(), "emoji", gaEntries, "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
	assert.Equal(t, 1, view.hides)
}

func TestPickNestedSessionPanics(t *testing.T) {
	var (
		p         *Picker
		lp        *loop.Loop
		recovered any
	)
	view := newFakeView(func(s Sink, _ []string, _ []int) {
		lp.Post(func() {
			defer func() { recovered = recover() }()
			_, _, _ = p.Pick(context.Background(), "emoji", gaEntries, "")
		})
		s.Close()
	})
	p, lp = newPicker(t, view, nil)

	_, ok, err := p.Pick(context.Background(), "hanja", gaEntries, "")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NotNil(t, recovered)
	assert.Contains(t, recovered, "emoji session started while hanja session is active")
	assert.Equal(t, 1, view.shows)
}

func TestPickDropsActionsFromEndedSession(t *testing.T) {
	view := newFakeView(func(s Sink, _ []string, _ []int) { s.Close() })
	p, _ := newPicker(t, view, nil)

	_, _, err := p.Pick(context.Background(), "hanja", gaEntries, "")
	require.NoError(t, err)
	stale := view.sinks[0]

	view.mu.Lock()
	view.script = func(s Sink, _ []string, _ []int) {
		stale.Activate(1)
		s.Close()
	}
	view.mu.Unlock()

	value, ok, err := p.Pick(context.Background(), "hanja", gaEntries, "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestPickContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	view := newFakeView(func(Sink, []string, []int) { cancel() })
	p, _ := newPicker(t, view, nil)

	_, ok, err := p.Pick(ctx, "hanja", gaEntries, "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
	assert.Nil(t, p.active)
	assert.Equal(t, 1, view.hides)
}

func TestPickShowError(t *testing.T) {
	view := newFakeView(nil)
	view.showErr = errors.New("no tty")
	p, _ := newPicker(t, view, nil)

	_, ok, err := p.Pick(context.Background(), "hanja", gaEntries, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
	assert.False(t, ok)
	assert.Nil(t, p.active)
	assert.Equal(t, 1, view.hides)
}

func TestPickPublishesLifecycle(t *testing.T) {
	hub := events.NewHub()
	ch, cancel := hub.Subscribe(4)
	defer cancel()

	view := newFakeView(func(s Sink, _ []string, _ []int) { s.Activate(0) })
	p, _ := newPicker(t, view, hub)

	_, _, err := p.Pick(context.Background(), "hanja", gaEntries, "")
	require.NoError(t, err)

	next := func() events.Event {
		select {
		case ev := <-ch:
			return ev
		case <-time.After(time.Second):
			t.Fatal("no event")
			return events.Event{}
		}
	}

	opened := next()
	assert.Equal(t, events.PickerOpened, opened.Topic)
	var op OpenedPayload
	require.NoError(t, opened.Decode(&op))
	assert.Equal(t, OpenedPayload{Kind: "hanja", Candidates: 3}, op)

	closed := next()
	assert.Equal(t, events.PickerClosed, closed.Topic)
	var cp ClosedPayload
	require.NoError(t, closed.Decode(&cp))
	assert.True(t, cp.Committed)
}
