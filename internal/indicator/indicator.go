// Package indicator publishes the input language to observers outside the core.
package indicator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattjoyce/hanpick/internal/events"
	"github.com/mattjoyce/hanpick/internal/icon"
)

// Color is the tray icon scheme.
type Color int

const (
	Black Color = iota
	White
)

// ParseColor maps a config value onto a Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "", "black":
		return Black, nil
	case "white":
		return White, nil
	}
	return Black, fmt.Errorf("unknown icon color %q", s)
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// IconName returns the themed icon name for lang, e.g. kime-han-black-64x64.
func IconName(lang icon.Lang, c Color) string {
	return fmt.Sprintf("kime-%s-%s-64x64", lang.Code(), c)
}

// Change is the payload of events.IconChanged.
type Change struct {
	Code string `json:"code"`
	Icon string `json:"icon"`
}

// Publisher implements icon.Indicator by publishing on the hub.
type Publisher struct {
	hub    *events.Hub
	color  Color
	logger *slog.Logger
}

func NewPublisher(hub *events.Hub, color Color, logger *slog.Logger) *Publisher {
	return &Publisher{hub: hub, color: color, logger: logger}
}

// Show publishes the icon for lang.
func (p *Publisher) Show(lang icon.Lang) {
	change := Change{Code: lang.Code(), Icon: IconName(lang, p.color)}
	p.logger.Debug("indicator icon", "icon", change.Icon)
	p.hub.Publish(events.IconChanged, change)
}

// StatusFile mirrors the current icon into a small file for status bars.
// The file holds "<code> <icon>\n" and is removed when Run returns.
type StatusFile struct {
	path   string
	hub    *events.Hub
	logger *slog.Logger
}

func NewStatusFile(path string, hub *events.Hub, logger *slog.Logger) *StatusFile {
	return &StatusFile{path: path, hub: hub, logger: logger}
}

// Run writes the initial state, then follows icon events until ctx is done.
// ready, when non-nil, is closed once the subscription exists.
func (s *StatusFile) Run(ctx context.Context, initial Change, ready chan<- struct{}) error {
	ch, cancel := s.hub.Subscribe(8)
	defer cancel()
	if ready != nil {
		close(ready)
	}
	defer func() {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove status file", "path", s.path, "error", err)
		}
	}()

	if err := s.write(initial); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if ev.Topic != events.IconChanged {
				continue
			}
			var c Change
			if err := ev.Decode(&c); err != nil {
				s.logger.Warn("bad icon event", "error", err)
				continue
			}
			if err := s.write(c); err != nil {
				s.logger.Warn("failed to write status file", "path", s.path, "error", err)
			}
		}
	}
}

// write replaces the file atomically so readers never see a partial line.
func (s *StatusFile) write(c Change) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create status directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(c.Code+" "+c.Icon+"\n"), 0o644); err != nil {
		return fmt.Errorf("write status file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace status file: %w", err)
	}
	return nil
}
