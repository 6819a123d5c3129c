// Package events is the in-process notification bus between the daemon core
// and its observers (the language indicator, the status file).
package events

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Topic names a kind of event.
type Topic string

const (
	IconChanged  Topic = "icon.changed"
	PickerOpened Topic = "picker.opened"
	PickerClosed Topic = "picker.closed"
)

type Event struct {
	ID    int64     `json:"id"`
	Topic Topic     `json:"topic"`
	At    time.Time `json:"at"`
	Data  []byte    `json:"data"` // JSON payload
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Data, v)
}

// Hub is an in-memory pub/sub that also remembers the last event per topic,
// so a late observer can render the current state straight away.
type Hub struct {
	nextID atomic.Int64

	mu     sync.Mutex
	latest map[Topic]Event

	subs      map[int]chan Event
	nextSubID int
}

func NewHub() *Hub {
	return &Hub{
		latest: make(map[Topic]Event),
		subs:   make(map[int]chan Event),
	}
}

// Publish never blocks; a subscriber that is not keeping up loses events.
func (h *Hub) Publish(topic Topic, data any) {
	payload := []byte("{}")
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			payload = b
		}
	}

	ev := Event{
		ID:    h.nextID.Add(1),
		Topic: topic,
		At:    time.Now().UTC(),
		Data:  payload,
	}

	h.mu.Lock()
	h.latest[topic] = ev
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	h.mu.Unlock()
}

// Subscribe returns a channel of future events and a cancel func that closes it.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSubID
	h.nextSubID++
	ch := make(chan Event, buffer)
	h.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if c, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(c)
			}
			h.mu.Unlock()
		})
	}

	return ch, cancel
}

// Latest returns the most recent event published on topic.
func (h *Hub) Latest(topic Topic) (Event, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ev, ok := h.latest[topic]
	return ev, ok
}
