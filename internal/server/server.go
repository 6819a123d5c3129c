// Package server listens on the kime window Unix socket and feeds each
// connection's request to a Handler.
//
// Connections are served one at a time, in accept order, on the event loop's
// owner goroutine. Accept, read and write are awaited through the loop, so a
// handler that opens a picker session keeps the loop turning while later
// clients wait in the listen backlog.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mattjoyce/hanpick/internal/log"
	"github.com/mattjoyce/hanpick/internal/loop"
)

// acceptBackoff is the pause after a failed Accept that is not a shutdown.
const acceptBackoff = 50 * time.Millisecond

// Handler answers one request. A nil or empty response writes nothing.
type Handler interface {
	Handle(ctx context.Context, requestID string, raw []byte) []byte
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, requestID string, raw []byte) []byte

func (f HandlerFunc) Handle(ctx context.Context, requestID string, raw []byte) []byte {
	return f(ctx, requestID, raw)
}

// Config holds the listener settings.
type Config struct {
	SocketPath      string
	Permissions     os.FileMode // 0 leaves the umask default
	MaxRequestBytes int
	// ReadTimeout bounds how long a client may take to send its request.
	// Zero means no limit.
	ReadTimeout time.Duration
}

// Server is a sequential Unix socket server.
type Server struct {
	cfg      Config
	path     string
	loop     *loop.Loop
	handler  Handler
	logger   *slog.Logger
	listener *net.UnixListener

	closeOnce sync.Once
	closeErr  error

	// owner goroutine only
	served int
}

// Listen removes a stale socket file at cfg.SocketPath, binds a new socket
// and applies cfg.Permissions. The caller must hold the daemon lock, or a
// live socket could be removed.
func Listen(cfg Config, lp *loop.Loop, h Handler, logger *slog.Logger) (*Server, error) {
	if cfg.SocketPath == "" {
		return nil, fmt.Errorf("socket path is not configured")
	}
	if cfg.MaxRequestBytes <= 0 {
		cfg.MaxRequestBytes = 4096
	}
	if logger == nil {
		logger = log.WithComponent("server")
	}

	absPath, err := prepareSocketPath(cfg.SocketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare socket path: %w", err)
	}

	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove existing socket file: %w", err)
	}

	ln, err := net.ListenUnix("unix", &net.UnixAddr{Name: absPath, Net: "unix"})
	if err != nil {
		return nil, fmt.Errorf("failed to listen on Unix socket %s: %w", absPath, err)
	}

	if cfg.Permissions != 0 {
		if err := os.Chmod(absPath, cfg.Permissions); err != nil {
			_ = ln.Close()
			return nil, fmt.Errorf("failed to set socket permissions: %w", err)
		}
	}

	logger.Info("listening", "socket", absPath, "permissions", fmt.Sprintf("%#o", cfg.Permissions))

	return &Server{
		cfg:      cfg,
		path:     absPath,
		loop:     lp,
		handler:  h,
		logger:   logger,
		listener: ln,
	}, nil
}

func prepareSocketPath(socketPath string) (string, error) {
	absPath, err := filepath.Abs(socketPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	parentDir := filepath.Dir(absPath)
	if err := os.MkdirAll(parentDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create parent directory %s: %w", parentDir, err)
	}
	return absPath, nil
}

// Path returns the absolute socket path.
func (s *Server) Path() string {
	return s.path
}

// Served returns the number of connections handled so far. Owner goroutine only.
func (s *Server) Served() int {
	return s.served
}

// Serve accepts and handles connections until ctx ends or the server or loop
// is closed; those cases return nil. It must run on the loop's owner
// goroutine and not inside RunUntil.
func (s *Server) Serve(ctx context.Context) error {
	for {
		conn, err := loop.Await(ctx, s.loop, s.listener.AcceptUnix)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, loop.ErrClosed) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Warn("accept failed", "error", err)
			time.Sleep(acceptBackoff)
			continue
		}

		s.serveConn(ctx, conn)
		s.served++
	}
}

// request is one connection's input, cut at MaxRequestBytes.
type request struct {
	raw     []byte
	dropped int64
}

func (s *Server) serveConn(ctx context.Context, conn *net.UnixConn) {
	defer conn.Close()

	id := uuid.NewString()
	logger := log.WithRequest(s.logger, id)

	if s.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
			logger.Warn("failed to set read deadline", "error", err)
		}
	}

	limit := int64(s.cfg.MaxRequestBytes)
	req, err := loop.Await(ctx, s.loop, func() (request, error) {
		raw, err := io.ReadAll(io.LimitReader(conn, limit))
		if err != nil {
			return request{}, err
		}
		// Closing with unread input resets the peer, so whatever did not
		// fit is read and thrown away before the response is written.
		dropped, err := io.Copy(io.Discard, conn)
		if err != nil {
			return request{}, fmt.Errorf("drain oversized request: %w", err)
		}
		return request{raw: raw, dropped: dropped}, nil
	})
	if err != nil {
		logger.Warn("read failed", "error", err)
		return
	}
	if req.dropped > 0 {
		logger.Warn("request truncated", "limit", limit, "dropped", req.dropped)
	}
	logger.Debug("request received", "bytes", len(req.raw))

	resp := s.handler.Handle(ctx, id, req.raw)
	if len(resp) == 0 {
		return
	}

	if _, err := loop.Await(ctx, s.loop, func() (int, error) {
		return conn.Write(resp)
	}); err != nil {
		logger.Warn("write failed", "error", err)
		return
	}
	logger.Debug("response sent", "bytes", len(resp))
}

// Close stops accepting and removes the socket file. Safe to call twice.
func (s *Server) Close() error {
	s.closeOnce.Do(func() {
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			s.closeErr = fmt.Errorf("close listener: %w", err)
		}
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove socket file", "socket", s.path, "error", err)
		}
		s.logger.Info("socket closed", "socket", s.path)
	})
	return s.closeErr
}
