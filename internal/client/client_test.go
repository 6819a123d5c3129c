package client

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hanpick/internal/protocol"
)

func shortSocket(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "hpc")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "s.sock")
}

func TestSendReadsUntilClose(t *testing.T) {
	path := shortSocket(t)
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer ln.Close()

	got := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		b, _ := io.ReadAll(conn)
		got <- b
		_, _ = conn.Write([]byte("han"))
	}()

	resp, err := Send(context.Background(), path, protocol.Request{Tag: protocol.TagLang})
	require.NoError(t, err)
	assert.Equal(t, "han", string(resp))
	assert.Equal(t, []byte("l"), <-got)
}

func TestSendEmptyResponse(t *testing.T) {
	path := shortSocket(t)
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		_, _ = io.ReadAll(conn)
		conn.Close()
	}()

	resp, err := Send(context.Background(), path, protocol.Request{Tag: protocol.TagHanja, Payload: []byte("없음")})
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestSendContextCancelsPendingRead(t *testing.T) {
	path := shortSocket(t)
	ln, err := net.Listen("unix", path)
	require.NoError(t, err)
	defer ln.Close()

	release := make(chan struct{})
	defer close(release)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		<-release
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = Send(ctx, path, protocol.Request{Tag: protocol.TagEmoji})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSendNoDaemon(t *testing.T) {
	_, err := Send(context.Background(), shortSocket(t), protocol.Request{Tag: protocol.TagLang})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}
