// Package daemon assembles the socket service: lock, dictionaries, icon
// state, picker, dispatcher and listener, all driven by one event loop.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/mattjoyce/hanpick/internal/candidate"
	"github.com/mattjoyce/hanpick/internal/config"
	"github.com/mattjoyce/hanpick/internal/dispatch"
	"github.com/mattjoyce/hanpick/internal/emoji"
	"github.com/mattjoyce/hanpick/internal/events"
	"github.com/mattjoyce/hanpick/internal/hanja"
	"github.com/mattjoyce/hanpick/internal/icon"
	"github.com/mattjoyce/hanpick/internal/indicator"
	"github.com/mattjoyce/hanpick/internal/lock"
	"github.com/mattjoyce/hanpick/internal/log"
	"github.com/mattjoyce/hanpick/internal/loop"
	"github.com/mattjoyce/hanpick/internal/picker"
	"github.com/mattjoyce/hanpick/internal/server"
)

// loopBacklog is the number of posted callbacks the loop queues before Post blocks.
const loopBacklog = 256

// Daemon is one running socket service.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger

	lock   *lock.Lock
	loop   *loop.Loop
	hub    *events.Hub
	state  *icon.State
	color  indicator.Color
	status *indicator.StatusFile
	server *server.Server

	closeOnce sync.Once
}

// New acquires the socket lock, loads the candidate stores and binds the
// socket. view renders picker sessions. On error nothing is left held.
func New(cfg *config.Config, view picker.View) (*Daemon, error) {
	logger := log.WithComponent("daemon")

	color, err := indicator.ParseColor(cfg.Indicator.Color)
	if err != nil {
		return nil, err
	}
	perm, err := config.ParseFileMode(cfg.Service.SocketPermissions)
	if err != nil {
		return nil, fmt.Errorf("service.socket_permissions: %w", err)
	}

	lk, err := lock.Acquire(cfg.Service.LockFile())
	if err != nil {
		if errors.Is(err, lock.ErrHeld) {
			return nil, fmt.Errorf("socket %s is already served: %w", cfg.Service.SocketPath, err)
		}
		return nil, err
	}

	d := &Daemon{cfg: cfg, logger: logger, lock: lk, color: color}
	if err := d.build(view, perm); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Daemon) build(view picker.View, perm os.FileMode) error {
	var keyed *candidate.KeyedStore
	if d.cfg.Service.Mode == config.ModeCombined || d.cfg.Service.Mode == config.ModeHanja {
		start := time.Now()
		store, stats, src, err := hanja.Load(d.cfg.Hanja)
		if err != nil {
			return fmt.Errorf("load hanja dictionary: %w", err)
		}
		d.logger.Info("hanja dictionary loaded",
			"source", src.Name,
			"keys", store.Len(),
			"entries", stats.Entries,
			"skipped", stats.Skipped,
			"blake3", src.Digest,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		keyed = store
	}

	d.hub = events.NewHub()
	d.state = icon.NewState(indicator.NewPublisher(d.hub, d.color, log.WithComponent("indicator")))
	if sf := d.cfg.Indicator.StatusFile; sf != "" {
		d.status = indicator.NewStatusFile(sf, d.hub, log.WithComponent("status"))
	}

	d.loop = loop.New(loopBacklog)
	pk := picker.New(d.loop, view, d.hub, log.WithComponent("picker"))

	disp, err := dispatch.New(dispatch.Options{
		Icon:       d.state,
		Hanja:      keyed,
		Emoji:      emoji.Store(),
		Chooser:    pk,
		Mode:       d.cfg.Service.Mode,
		MissPolicy: d.cfg.Hanja.MissPolicy,
		Logger:     log.WithComponent("dispatch"),
	})
	if err != nil {
		return err
	}

	d.server, err = server.Listen(server.Config{
		SocketPath:      d.cfg.Service.SocketPath,
		Permissions:     perm,
		MaxRequestBytes: d.cfg.Service.MaxRequestBytes,
		ReadTimeout:     d.cfg.Service.RequestTimeout,
	}, d.loop, disp, log.WithComponent("server"))
	return err
}

// Hub returns the daemon's event hub.
func (d *Daemon) Hub() *events.Hub {
	return d.hub
}

// SocketPath returns the bound socket path.
func (d *Daemon) SocketPath() string {
	return d.server.Path()
}

// Run serves until ctx ends. The calling goroutine becomes the event loop's
// owner: every request, icon change and picker session runs on it.
func (d *Daemon) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if d.status != nil {
		initial := indicator.Change{Code: d.state.Code(), Icon: indicator.IconName(d.state.Get(), d.color)}
		ready := make(chan struct{})
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.status.Run(ctx, initial, ready); err != nil {
				d.logger.Warn("status file stopped", "error", err)
			}
		}()
		<-ready
	}

	d.logger.Info("serving", "socket", d.server.Path(), "mode", d.cfg.Service.Mode)
	err := d.server.Serve(ctx)

	cancel()
	wg.Wait()
	d.logger.Info("stopped", "requests", d.server.Served())
	return err
}

// Close unbinds the socket, stops the loop and releases the lock. Safe to
// call more than once.
func (d *Daemon) Close() error {
	var errs []error
	d.closeOnce.Do(func() {
		if d.server != nil {
			errs = append(errs, d.server.Close())
		}
		if d.loop != nil {
			d.loop.Close()
		}
		errs = append(errs, d.lock.Release())
	})
	return errors.Join(errs...)
}
