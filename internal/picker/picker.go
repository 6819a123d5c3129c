// Package picker runs one interactive filter-and-select session at a time.
//
// A session owns the candidate slice handed to Pick, the current filter text
// and the list of visible candidate indices. The View only ever sees labels
// and indices: activating a row reports the candidate index back, and the
// session reads the value from its own slice.
//
// Pick blocks the event loop's owner goroutine in loop.RunUntil until the
// session is committed or cancelled, so no further requests are dispatched
// meanwhile.
package picker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mattjoyce/hanpick/internal/candidate"
	"github.com/mattjoyce/hanpick/internal/events"
	"github.com/mattjoyce/hanpick/internal/loop"
)

// Match reports whether filter occurs in label. Plain, case-sensitive substring test.
func Match(label, filter string) bool {
	return strings.Contains(label, filter)
}

// Sink receives user actions from a View. Every method may be called from any
// goroutine, including after the session has ended.
type Sink interface {
	FilterChanged(text string)
	// Activate selects the candidate with the given index.
	Activate(index int)
	// Close cancels the session, as closing the window does.
	Close()
}

// View renders sessions. It is long-lived and reused: Show starts a session's
// presentation, Hide ends it.
type View interface {
	Show(sink Sink, labels []string, filter string, visible []int) error
	Update(visible []int)
	Hide()
}

// Picker runs sessions on a loop.
type Picker struct {
	loop   *loop.Loop
	view   View
	hub    *events.Hub
	logger *slog.Logger

	// owner goroutine only
	active *session
	gen    uint64
}

// New creates a Picker. hub may be nil.
func New(lp *loop.Loop, view View, hub *events.Hub, logger *slog.Logger) *Picker {
	return &Picker{loop: lp, view: view, hub: hub, logger: logger}
}

type session struct {
	gen     uint64
	kind    string
	entries []candidate.Entry
	labels  []string
	filter  string
	visible []int

	resolved  bool
	committed bool
	value     string
}

func (s *session) refilter(text string) {
	s.filter = text
	s.visible = s.visible[:0]
	for i, label := range s.labels {
		if Match(label, text) {
			s.visible = append(s.visible, i)
		}
	}
}

func (s *session) isVisible(index int) bool {
	for _, i := range s.visible {
		if i == index {
			return true
		}
	}
	return false
}

// OpenedPayload and ClosedPayload are published on the hub.
type OpenedPayload struct {
	Kind       string `json:"kind"`
	Candidates int    `json:"candidates"`
	Filter     string `json:"filter,omitempty"`
}

type ClosedPayload struct {
	Kind      string `json:"kind"`
	Committed bool   `json:"committed"`
}

// Pick shows entries filtered by filter and waits for the user.
// ok is false when the session was cancelled. kind only labels logs and events.
//
// Pick must be called on the loop's owner goroutine, outside any RunUntil.
// Starting a session while another is active panics.
func (p *Picker) Pick(ctx context.Context, kind string, entries []candidate.Entry, filter string) (value string, ok bool, err error) {
	if p.active != nil {
		panic(fmt.Sprintf("picker: %s session started while %s session is active", kind, p.active.kind))
	}

	p.gen++
	s := &session{
		gen:     p.gen,
		kind:    kind,
		entries: entries,
		labels:  make([]string, len(entries)),
		visible: make([]int, 0, len(entries)),
	}
	for i, e := range entries {
		s.labels[i] = e.Label()
	}
	s.refilter(filter)

	p.active = s
	defer p.teardown(s)

	p.logger.Debug("picker session opened", "kind", kind, "candidates", len(entries), "filter", filter)
	p.publish(events.PickerOpened, OpenedPayload{Kind: kind, Candidates: len(entries), Filter: filter})

	if err := p.view.Show(&sink{picker: p, gen: s.gen}, s.labels, filter, cloneIndices(s.visible)); err != nil {
		return "", false, fmt.Errorf("show picker: %w", err)
	}

	if err := p.loop.RunUntil(ctx, func() bool { return s.resolved }); err != nil {
		return "", false, err
	}
	return s.value, s.committed, nil
}

func (p *Picker) teardown(s *session) {
	p.view.Hide()
	p.active = nil
	s.entries, s.labels, s.visible = nil, nil, nil

	p.logger.Debug("picker session closed", "kind", s.kind, "committed", s.committed)
	p.publish(events.PickerClosed, ClosedPayload{Kind: s.kind, Committed: s.committed})
}

// current returns the active session if gen still names it.
func (p *Picker) current(gen uint64) *session {
	if p.active == nil || p.active.gen != gen || p.active.resolved {
		return nil
	}
	return p.active
}

func (p *Picker) onFilter(gen uint64, text string) {
	s := p.current(gen)
	if s == nil || s.filter == text {
		return
	}
	s.refilter(text)
	p.view.Update(cloneIndices(s.visible))
}

func (p *Picker) onActivate(gen uint64, index int) {
	s := p.current(gen)
	if s == nil {
		return
	}
	if index < 0 || index >= len(s.entries) || !s.isVisible(index) {
		p.logger.Debug("ignoring activation of hidden row", "index", index)
		return
	}
	s.value = s.entries[index].Value
	s.committed = true
	s.resolved = true
}

func (p *Picker) onClose(gen uint64) {
	s := p.current(gen)
	if s == nil {
		return
	}
	s.resolved = true
}

func (p *Picker) publish(topic events.Topic, data any) {
	if p.hub != nil {
		p.hub.Publish(topic, data)
	}
}

// sink forwards view actions onto the loop, tagged with the session generation
// so actions from an earlier session are ignored.
type sink struct {
	picker *Picker
	gen    uint64
}

func (s *sink) FilterChanged(text string) {
	s.picker.loop.Post(func() { s.picker.onFilter(s.gen, text) })
}

func (s *sink) Activate(index int) {
	s.picker.loop.Post(func() { s.picker.onActivate(s.gen, index) })
}

func (s *sink) Close() {
	s.picker.loop.Post(func() { s.picker.onClose(s.gen) })
}

func cloneIndices(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	return out
}
