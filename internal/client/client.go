// Package client sends one request to a running daemon.
package client

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/mattjoyce/hanpick/internal/protocol"
)

// Send connects to the socket at path, writes req, half-closes the
// connection and returns everything the daemon answers. An empty answer is
// not an error. Cancelling ctx aborts a pending read, which matters while the
// daemon is waiting on a picker.
func Send(ctx context.Context, path string, req protocol.Request) ([]byte, error) {
	var d net.Dialer
	c, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", path, err)
	}
	conn := c.(*net.UnixConn)
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if err := protocol.Encode(conn, req); err != nil {
		return nil, err
	}
	if err := conn.CloseWrite(); err != nil {
		return nil, fmt.Errorf("failed to finish request: %w", err)
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp, nil
}
