package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUntilProcessesPostedCallbacks(t *testing.T) {
	l := New(4)
	defer l.Close()

	count := 0
	go func() {
		for i := 0; i < 3; i++ {
			l.Post(func() { count++ })
		}
	}()

	err := l.RunUntil(context.Background(), func() bool { return count == 3 })
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 0, l.Depth())
}

func TestRunUntilReturnsImmediatelyWhenDone(t *testing.T) {
	l := New(1)
	defer l.Close()

	require.NoError(t, l.RunUntil(context.Background(), func() bool { return true }))
}

func TestRunUntilNestedPanics(t *testing.T) {
	l := New(1)
	defer l.Close()

	finished := false
	var recovered any
	l.Post(func() {
		defer func() {
			recovered = recover()
			finished = true
		}()
		_ = l.RunUntil(context.Background(), func() bool { return false })
	})

	require.NoError(t, l.RunUntil(context.Background(), func() bool { return finished }))
	require.NotNil(t, recovered)
	assert.Contains(t, recovered, "depth 2")
	assert.Equal(t, 0, l.Depth())
}

func TestRunUntilContextCancel(t *testing.T) {
	l := New(1)
	defer l.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := l.RunUntil(ctx, func() bool { return false })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCloseStopsRunUntilAndPost(t *testing.T) {
	l := New(1)

	go func() {
		time.Sleep(10 * time.Millisecond)
		l.Close()
	}()

	err := l.RunUntil(context.Background(), func() bool { return false })
	assert.ErrorIs(t, err, ErrClosed)
	assert.False(t, l.Post(func() {}))
	l.Close()
}

func TestAwait(t *testing.T) {
	l := New(1)
	defer l.Close()

	v, err := Await(context.Background(), l, func() (string, error) {
		time.Sleep(5 * time.Millisecond)
		return "家", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "家", v)
}

func TestAwaitPropagatesOpError(t *testing.T) {
	l := New(1)
	defer l.Close()

	boom := errors.New("boom")
	_, err := Await(context.Background(), l, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestAwaitRunsOtherCallbacksWhileWaiting(t *testing.T) {
	l := New(4)
	defer l.Close()

	release := make(chan struct{})
	seen := false
	l.Post(func() {
		seen = true
		close(release)
	})

	_, err := Await(context.Background(), l, func() (struct{}, error) {
		<-release
		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestAwaitContextCancel(t *testing.T) {
	l := New(1)
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	block := make(chan struct{})
	defer close(block)

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := Await(ctx, l, func() (int, error) {
		<-block
		return 1, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
