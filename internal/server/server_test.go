package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hanpick/internal/client"
	"github.com/mattjoyce/hanpick/internal/log"
	"github.com/mattjoyce/hanpick/internal/loop"
	"github.com/mattjoyce/hanpick/internal/protocol"
)

func shortSocket(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "hps")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "s.sock")
}

type recorder struct {
	mu   sync.Mutex
	reqs [][]byte
	ids  []string
}

func (r *recorder) Handle(_ context.Context, id string, raw []byte) []byte {
	r.mu.Lock()
	r.reqs = append(r.reqs, raw)
	r.ids = append(r.ids, id)
	r.mu.Unlock()

	if len(raw) > 0 && raw[0] == 'l' {
		return []byte("eng")
	}
	return nil
}

func startServer(t *testing.T, cfg Config, h Handler) *Server {
	t.Helper()
	lp := loop.New(0)
	srv, err := Listen(cfg, lp, h, log.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("Serve did not return")
		}
		_ = srv.Close()
		lp.Close()
	})
	return srv
}

func send(t *testing.T, path, req string) []byte {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	r, err := protocol.ParseArg(req)
	require.NoError(t, err)
	resp, err := client.Send(ctx, path, r)
	require.NoError(t, err)
	return resp
}

func TestServeAnswersRequest(t *testing.T) {
	rec := &recorder{}
	srv := startServer(t, Config{SocketPath: shortSocket(t)}, rec)

	assert.Equal(t, []byte("eng"), send(t, srv.Path(), "l"))
	assert.Empty(t, send(t, srv.Path(), "ihan"))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, [][]byte{[]byte("l"), []byte("ihan")}, rec.reqs)
	require.Len(t, rec.ids, 2)
	assert.NotEqual(t, rec.ids[0], rec.ids[1])
}

func TestServeTruncatesLongRequest(t *testing.T) {
	rec := &recorder{}
	srv := startServer(t, Config{SocketPath: shortSocket(t), MaxRequestBytes: 4}, rec)

	assert.Empty(t, send(t, srv.Path(), "h가나다"))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.reqs, 1)
	assert.Equal(t, []byte("h가"), rec.reqs[0])
}

func TestServeAnswersTruncatedRequest(t *testing.T) {
	tests := []struct {
		name   string
		filler int
	}{
		{"just over the limit", 100},
		{"larger than the socket buffer", 1 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			srv := startServer(t, Config{SocketPath: shortSocket(t), MaxRequestBytes: 16}, rec)

			req := "l" + strings.Repeat("x", tt.filler)
			assert.Equal(t, []byte("eng"), send(t, srv.Path(), req))
			// The listener keeps serving afterwards.
			assert.Equal(t, []byte("eng"), send(t, srv.Path(), "l"))

			rec.mu.Lock()
			defer rec.mu.Unlock()
			require.Len(t, rec.reqs, 2)
			assert.Equal(t, []byte("l"+strings.Repeat("x", 15)), rec.reqs[0])
		})
	}
}

func TestServeRunsHandlerOnLoopGoroutine(t *testing.T) {
	var depths []int
	var lp *loop.Loop
	h := HandlerFunc(func(ctx context.Context, _ string, raw []byte) []byte {
		depths = append(depths, lp.Depth())
		return raw
	})

	lp = loop.New(0)
	srv, err := Listen(Config{SocketPath: shortSocket(t)}, lp, h, log.Discard())
	require.NoError(t, err)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()

	assert.Equal(t, []byte("e"), send(t, srv.Path(), "e"))
	cancel()
	<-done

	assert.Equal(t, []int{0}, depths)
	assert.Equal(t, 1, srv.Served())
}

func TestListenReplacesStaleSocketFile(t *testing.T) {
	path := shortSocket(t)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	srv := startServer(t, Config{SocketPath: path, Permissions: 0o600}, &recorder{})

	info, err := os.Stat(srv.Path())
	require.NoError(t, err)
	assert.Equal(t, os.ModeSocket, info.Mode()&os.ModeSocket)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCloseRemovesSocket(t *testing.T) {
	lp := loop.New(0)
	defer lp.Close()

	srv, err := Listen(Config{SocketPath: shortSocket(t)}, lp, &recorder{}, log.Discard())
	require.NoError(t, err)

	require.NoError(t, srv.Close())
	require.NoError(t, srv.Close())

	_, err = os.Stat(srv.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestServeStopsWhenClosed(t *testing.T) {
	lp := loop.New(0)
	defer lp.Close()

	srv, err := Listen(Config{SocketPath: shortSocket(t)}, lp, &recorder{}, log.Discard())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, srv.Close())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Close")
	}
}

func TestListenRequiresPath(t *testing.T) {
	_, err := Listen(Config{}, loop.New(0), &recorder{}, log.Discard())
	assert.Error(t, err)
}
