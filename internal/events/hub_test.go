package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(4)
	defer cancel()

	h.Publish(IconChanged, map[string]string{"code": "han"})

	select {
	case ev := <-ch:
		assert.Equal(t, IconChanged, ev.Topic)
		assert.Equal(t, int64(1), ev.ID)

		var payload map[string]string
		require.NoError(t, ev.Decode(&payload))
		assert.Equal(t, "han", payload["code"])
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestLatestPerTopic(t *testing.T) {
	h := NewHub()

	_, ok := h.Latest(IconChanged)
	assert.False(t, ok)

	h.Publish(IconChanged, map[string]string{"code": "eng"})
	h.Publish(PickerOpened, nil)
	h.Publish(IconChanged, map[string]string{"code": "han"})

	ev, ok := h.Latest(IconChanged)
	require.True(t, ok)
	assert.Equal(t, int64(3), ev.ID)

	ev, ok = h.Latest(PickerOpened)
	require.True(t, ok)
	assert.Equal(t, "{}", string(ev.Data))
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			h.Publish(PickerClosed, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Len(t, ch, 1)
}

func TestCancelClosesChannelOnce(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe(1)
	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	h.Publish(IconChanged, nil)
}
