package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattjoyce/hanpick/internal/config"
	"github.com/mattjoyce/hanpick/internal/log"
	"github.com/mattjoyce/hanpick/internal/loop"
	"github.com/mattjoyce/hanpick/internal/server"
)

func captureOutputWithExitCode(t *testing.T, run func() int) (int, string, string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	stdoutR, stdoutW, err := os.Pipe()
	require.NoError(t, err)
	stderrR, stderrW, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = stdoutW
	os.Stderr = stderrW

	code := run()

	_ = stdoutW.Close()
	_ = stderrW.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	stdoutBytes, _ := io.ReadAll(stdoutR)
	stderrBytes, _ := io.ReadAll(stderrR)
	_ = stdoutR.Close()
	_ = stderrR.Close()

	return code, string(stdoutBytes), string(stderrBytes)
}

func setVersionMetadataForTest(t *testing.T, v, commit, built string) {
	t.Helper()

	origVersion, origCommit, origBuildDate := version, gitCommit, buildDate
	version, gitCommit, buildDate = v, commit, built

	t.Cleanup(func() {
		version, gitCommit, buildDate = origVersion, origCommit, origBuildDate
	})
}

func shortDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "hpm")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestHelpExitsZero(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"help"}} {
		code, stdout, _ := captureOutputWithExitCode(t, func() int { return runCLI(args) })
		assert.Equal(t, 0, code, "args %v", args)
		assert.Contains(t, stdout, "hanpick - hanja, emoji")
	}
}

func TestUnknownCommand(t *testing.T) {
	code, _, stderr := captureOutputWithExitCode(t, func() int { return runCLI([]string{"frobnicate"}) })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Unknown command: frobnicate")
}

func TestUnknownFlag(t *testing.T) {
	code, _, stderr := captureOutputWithExitCode(t, func() int { return runCLI([]string{"--bogus"}) })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Flag error")
}

func TestVersionJSON(t *testing.T) {
	setVersionMetadataForTest(t, "1.2.3", "0123456789abcdef", "2026-03-01T10:00:00+09:00")

	code, stdout, _ := captureOutputWithExitCode(t, func() int { return runCLI([]string{"version", "--json"}) })
	require.Equal(t, 0, code)

	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, versionInfo{
		Version:   "1.2.3",
		Commit:    "0123456789ab",
		BuildTime: "2026-03-01T01:00:00Z",
	}, info)
}

func TestVersionText(t *testing.T) {
	setVersionMetadataForTest(t, "1.2.3", "abc", "unknown")

	code, stdout, _ := captureOutputWithExitCode(t, func() int { return runCLI([]string{"--version"}) })
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "hanpick 1.2.3")
	assert.Contains(t, stdout, "commit: abc")
}

func TestParseServeFlagsAndOverrides(t *testing.T) {
	sf, err := parseServeFlags([]string{"--white", "--socket", "/run/user/1000/kime.sock", "--log-level", "debug"})
	require.NoError(t, err)

	cfg := config.Default()
	require.NoError(t, applyOverrides(cfg, sf))
	assert.Equal(t, config.ColorWhite, cfg.Indicator.Color)
	assert.Equal(t, "/run/user/1000/kime.sock", cfg.Service.SocketPath)
	assert.Equal(t, "/run/user/1000/kime.sock.lock", cfg.Service.LockFile())
	assert.Equal(t, "debug", cfg.Service.LogLevel)

	_, err = parseServeFlags([]string{"extra"})
	assert.Error(t, err)
}

func TestDefaultsWithoutFlags(t *testing.T) {
	sf, err := parseServeFlags(nil)
	require.NoError(t, err)

	cfg := config.Default()
	require.NoError(t, applyOverrides(cfg, sf))
	assert.Equal(t, config.ColorBlack, cfg.Indicator.Color)
	assert.Equal(t, config.DefaultSocketPath, cfg.Service.SocketPath)
}

func TestSendPrintsResponse(t *testing.T) {
	path := filepath.Join(shortDir(t), "k.sock")

	lp := loop.New(0)
	defer lp.Close()
	srv, err := server.Listen(server.Config{SocketPath: path}, lp, server.HandlerFunc(
		func(_ context.Context, _ string, raw []byte) []byte {
			if string(raw) == "ihan\n" {
				return []byte("ok")
			}
			return nil
		}), log.Discard())
	require.NoError(t, err)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Serve(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runCLI([]string{"send", "--socket", path, "--timeout", "2s", `ihan\n`})
	})
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "ok", stdout)

	code, stdout, _ = captureOutputWithExitCode(t, func() int {
		return runCLI([]string{"send", "--socket", path, "l"})
	})
	require.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestSendNoDaemon(t *testing.T) {
	path := filepath.Join(shortDir(t), "none.sock")
	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runCLI([]string{"send", "--socket", path, "--timeout", time.Second.String(), "l"})
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Send failed")
}

func TestSendUsage(t *testing.T) {
	code, _, stderr := captureOutputWithExitCode(t, func() int { return runCLI([]string{"send"}) })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage: hanpick send")
}

func TestDoctorWithConfigFile(t *testing.T) {
	dir := shortDir(t)
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`service:
  mode: lang
  socket_path: `+filepath.Join(dir, "k.sock")+`
`), 0o644))

	code, stdout, _ := captureOutputWithExitCode(t, func() int {
		return runCLI([]string{"doctor", "--config", cfgPath})
	})
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Configuration valid")
	assert.Contains(t, stdout, cfgPath)
}

func TestDoctorInvalidDictionary(t *testing.T) {
	dir := shortDir(t)
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`service:
  mode: lang
  socket_path: `+filepath.Join(dir, "k.sock")+`
hanja:
  dictionary_path: `+filepath.Join(dir, "missing.txt")+`
`), 0o644))

	code, stdout, _ := captureOutputWithExitCode(t, func() int {
		return runCLI([]string{"doctor", "--json", "--config", cfgPath})
	})
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, `"valid": false`)
}
