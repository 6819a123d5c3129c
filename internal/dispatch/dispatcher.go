package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mattjoyce/hanpick/internal/candidate"
	"github.com/mattjoyce/hanpick/internal/config"
	"github.com/mattjoyce/hanpick/internal/icon"
	"github.com/mattjoyce/hanpick/internal/log"
	"github.com/mattjoyce/hanpick/internal/protocol"
)

//go:generate mockgen -destination=mocks/mock_chooser.go -package=mocks github.com/mattjoyce/hanpick/internal/dispatch Chooser

// Chooser runs an interactive selection. *picker.Picker implements it.
type Chooser interface {
	Pick(ctx context.Context, kind string, entries []candidate.Entry, filter string) (string, bool, error)
}

// Options configures a Dispatcher.
type Options struct {
	Icon       *icon.State
	Hanja      *candidate.KeyedStore
	Emoji      *candidate.FlatStore
	Chooser    Chooser
	Mode       string // config.Mode*; empty means combined
	MissPolicy string // config.Miss*; empty means silent
	Logger     *slog.Logger
}

// Dispatcher maps request tags to actions.
type Dispatcher struct {
	icon       *icon.State
	hanja      *candidate.KeyedStore
	emoji      *candidate.FlatStore
	chooser    Chooser
	missPolicy string
	enabled    map[protocol.Tag]bool
	logger     *slog.Logger
}

// New creates a Dispatcher.
func New(opts Options) (*Dispatcher, error) {
	tags, err := TagsForMode(opts.Mode)
	if err != nil {
		return nil, err
	}

	missPolicy := opts.MissPolicy
	switch missPolicy {
	case "":
		missPolicy = config.MissSilent
	case config.MissSilent, config.MissEcho, config.MissSearch:
	default:
		return nil, fmt.Errorf("unknown miss policy %q", missPolicy)
	}

	st := opts.Icon
	if st == nil {
		st = icon.NewState(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.WithComponent("dispatch")
	}

	enabled := make(map[protocol.Tag]bool, len(tags))
	for _, t := range tags {
		enabled[t] = true
	}

	return &Dispatcher{
		icon:       st,
		hanja:      opts.Hanja,
		emoji:      opts.Emoji,
		chooser:    opts.Chooser,
		missPolicy: missPolicy,
		enabled:    enabled,
		logger:     logger,
	}, nil
}

// TagsForMode returns the tags served in a service mode.
func TagsForMode(mode string) ([]protocol.Tag, error) {
	switch mode {
	case "", config.ModeCombined:
		return protocol.Tags, nil
	case config.ModeHanja:
		return []protocol.Tag{protocol.TagHanja}, nil
	case config.ModeEmoji:
		return []protocol.Tag{protocol.TagEmoji}, nil
	case config.ModeLang:
		return []protocol.Tag{protocol.TagIcon, protocol.TagLang}, nil
	}
	return nil, fmt.Errorf("unknown service mode %q", mode)
}

// Handle processes one raw request and returns the response bytes; nil means
// no response. requestID only labels log lines.
func (d *Dispatcher) Handle(ctx context.Context, requestID string, raw []byte) []byte {
	logger := log.WithRequest(d.logger, requestID)

	req, err := protocol.Decode(raw)
	if err != nil {
		logger.Debug("dropping request", "error", err)
		return nil
	}
	if !d.enabled[req.Tag] {
		logger.Warn("unknown request type", "tag", req.Tag.String())
		return nil
	}

	logger = logger.With("tag", req.Tag.String())

	switch req.Tag {
	case protocol.TagIcon:
		d.setIcon(logger, req.Payload)
		return nil
	case protocol.TagLang:
		return []byte(d.icon.Code())
	case protocol.TagHanja:
		return d.lookupHanja(ctx, logger, req.Payload)
	case protocol.TagEmoji:
		return d.pick(ctx, logger, "emoji", d.emoji.Entries(), "")
	}
	return nil
}

func (d *Dispatcher) setIcon(logger *slog.Logger, payload []byte) {
	code := protocol.IconPayload(payload)
	lang, ok := icon.ParseLang(code)
	if !ok {
		logger.Warn("unknown language icon", "payload", string(code))
		return
	}
	d.icon.Set(lang)
	logger.Debug("language icon set", "lang", lang.Code())
}

func (d *Dispatcher) lookupHanja(ctx context.Context, logger *slog.Logger, payload []byte) []byte {
	key, err := protocol.HanjaKey(payload)
	if err != nil {
		logger.Warn("dropping hanja request", "error", err)
		return nil
	}

	if entries, ok := d.hanja.Lookup(key); ok {
		return d.pick(ctx, logger, "hanja", entries, "")
	}

	logger.Debug("hanja lookup miss", "key", key, "policy", d.missPolicy)
	switch d.missPolicy {
	case config.MissEcho:
		if key == "" {
			return nil
		}
		return []byte(key)
	case config.MissSearch:
		if key == "" || d.hanja.Len() == 0 {
			return nil
		}
		return d.pick(ctx, logger, "hanja-search", d.hanja.All(), key)
	}
	return nil
}

func (d *Dispatcher) pick(ctx context.Context, logger *slog.Logger, kind string, entries []candidate.Entry, filter string) []byte {
	if d.chooser == nil {
		logger.Warn("no picker configured")
		return nil
	}

	value, ok, err := d.chooser.Pick(ctx, kind, entries, filter)
	switch {
	case err != nil && errors.Is(err, context.Canceled):
		logger.Debug("picker interrupted", "error", err)
		return nil
	case err != nil:
		logger.Error("picker failed", "error", err)
		return nil
	case !ok:
		logger.Debug("picker cancelled")
		return nil
	}

	logger.Info("candidate selected", "kind", kind, "value", value)
	return []byte(value)
}
