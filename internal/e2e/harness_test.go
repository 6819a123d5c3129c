package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hanpick/internal/client"
	"github.com/mattjoyce/hanpick/internal/config"
	"github.com/mattjoyce/hanpick/internal/daemon"
	"github.com/mattjoyce/hanpick/internal/picker"
	"github.com/mattjoyce/hanpick/internal/protocol"
)

const testDict = "# e2e dictionary\n가:假:거짓 가\n가:家:집 가\n"

// session is one picker opening as seen by the view.
type session struct {
	sink    picker.Sink
	labels  []string
	visible []int
}

// scriptedView hands every session to the test instead of drawing it.
type scriptedView struct {
	shown  chan session
	hidden chan struct{}
}

func newScriptedView() *scriptedView {
	return &scriptedView{shown: make(chan session, 4), hidden: make(chan struct{}, 4)}
}

func (v *scriptedView) Show(s picker.Sink, labels []string, _ string, visible []int) error {
	v.shown <- session{sink: s, labels: labels, visible: visible}
	return nil
}

func (v *scriptedView) Update([]int) {}

func (v *scriptedView) Hide() {
	select {
	case v.hidden <- struct{}{}:
	default:
	}
}

func (v *scriptedView) waitShown(t *testing.T) session {
	t.Helper()
	select {
	case s := <-v.shown:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("picker was not shown")
		return session{}
	}
}

type harness struct {
	cfg    *config.Config
	daemon *daemon.Daemon
	view   *scriptedView
}

func newConfig(t *testing.T) *config.Config {
	t.Helper()
	dir, err := os.MkdirTemp("", "hpe")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	dict := filepath.Join(dir, "hanja.txt")
	require.NoError(t, os.WriteFile(dict, []byte(testDict), 0o644))

	cfg := config.Default()
	cfg.Service.SocketPath = filepath.Join(dir, "k.sock")
	cfg.Hanja.DictionaryPath = dict
	cfg.Indicator.StatusFile = filepath.Join(dir, "lang")
	return cfg
}

func start(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	view := newScriptedView()
	d, err := daemon.New(cfg, view)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("daemon did not stop")
		}
		require.NoError(t, d.Close())
	})
	return &harness{cfg: cfg, daemon: d, view: view}
}

type reply struct {
	data []byte
	err  error
}

// sendAsync sends req from its own goroutine, like an input method would.
func (h *harness) sendAsync(req string) <-chan reply {
	out := make(chan reply, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		r, err := protocol.ParseArg(req)
		if err != nil {
			out <- reply{err: err}
			return
		}
		data, err := client.Send(ctx, h.daemon.SocketPath(), r)
		out <- reply{data: data, err: err}
	}()
	return out
}

func (h *harness) send(t *testing.T, req string) []byte {
	t.Helper()
	return wait(t, h.sendAsync(req))
}

func wait(t *testing.T, ch <-chan reply) []byte {
	t.Helper()
	select {
	case r := <-ch:
		require.NoError(t, r.err)
		return r.data
	case <-time.After(5 * time.Second):
		t.Fatal("no reply")
		return nil
	}
}
