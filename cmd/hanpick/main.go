package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mattjoyce/hanpick/internal/client"
	"github.com/mattjoyce/hanpick/internal/config"
	"github.com/mattjoyce/hanpick/internal/daemon"
	"github.com/mattjoyce/hanpick/internal/doctor"
	"github.com/mattjoyce/hanpick/internal/log"
	"github.com/mattjoyce/hanpick/internal/protocol"
	"github.com/mattjoyce/hanpick/internal/tui/pick"
	"github.com/mattjoyce/hanpick/internal/tui/watch"
)

var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(runCLI(os.Args[1:]))
}

func runCLI(cliArgs []string) int {
	if len(cliArgs) == 0 || strings.HasPrefix(cliArgs[0], "-") {
		if len(cliArgs) > 0 && cliArgs[0] == "--version" {
			return runVersion(cliArgs[1:])
		}
		return runServe(cliArgs)
	}

	cmd := cliArgs[0]
	args := cliArgs[1:]

	switch cmd {
	case "serve":
		return runServe(args)
	case "send":
		return runSend(args)
	case "doctor":
		return runDoctor(args)
	case "watch":
		return runWatch(args)
	case "version":
		return runVersion(args)
	case "help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(os.Stderr)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `hanpick - hanja, emoji and input-language helper for the kime input method

Usage:
  hanpick [--white] [--config PATH] [--socket PATH] [--log-level LEVEL]
  hanpick <command> [flags]

Daemon flags:
  --white           Use white tray icons (default black)
  --config PATH     Configuration file (default: discovered, else built-in)
  --socket PATH     Socket path (default /tmp/kime_window.sock)
  --log-level L     debug | info | warn | error
  -h, --help        Show this help message

Commands:
  send <request>    Send one request and print the answer
                    (e.g. "l", "ihan", "h가", "e"; "\n" is unescaped)
  doctor            Validate configuration, dictionary and picker terminal
  watch             Live view of the daemon's language and switches
  version           Show version information
  help              Show this help message
`)
}

// serveFlags are the flags that override configuration for the daemon.
type serveFlags struct {
	white      bool
	configPath string
	socket     string
	logLevel   string
}

func parseServeFlags(args []string) (serveFlags, error) {
	var sf serveFlags
	fs := flag.NewFlagSet("hanpick", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printUsage(os.Stdout) }
	fs.BoolVar(&sf.white, "white", false, "Use white tray icons")
	fs.StringVar(&sf.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&sf.socket, "socket", "", "Socket path")
	fs.StringVar(&sf.logLevel, "log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return sf, err
	}
	if fs.NArg() > 0 {
		return sf, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return sf, nil
}

// applyOverrides folds command-line flags into cfg.
func applyOverrides(cfg *config.Config, sf serveFlags) error {
	if sf.white {
		cfg.Indicator.Color = config.ColorWhite
	}
	if sf.socket != "" {
		abs, err := filepath.Abs(sf.socket)
		if err != nil {
			return fmt.Errorf("resolve socket path: %w", err)
		}
		cfg.Service.SocketPath = abs
	}
	if sf.logLevel != "" {
		cfg.Service.LogLevel = sf.logLevel
	}
	return nil
}

func runServe(args []string) int {
	sf, err := parseServeFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	cfg, err := config.LoadOrDefault(sf.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := applyOverrides(cfg, sf); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	log.Setup(cfg.Service.LogLevel, cfg.Service.LogFormat)
	logger := log.WithComponent("main")
	logger.Info("hanpick starting", "version", version, "config", cfg.SourceFile, "socket", cfg.Service.SocketPath)

	view := pick.NewView(cfg.Picker.TTY, cfg.Picker.Height, log.WithComponent("tui"))
	d, err := daemon.New(cfg, view)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return 1
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Warn("shutdown incomplete", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := d.Run(ctx); err != nil {
		logger.Error("daemon failed", "error", err)
		return 1
	}

	logger.Info("hanpick stopped")
	return 0
}

func runSend(args []string) int {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	socket := fs.String("socket", "", "Socket path")
	timeout := fs.Duration("timeout", 0, "Give up after this long (0 waits for the picker)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: hanpick send [--socket PATH] [--timeout D] <request>")
		return 1
	}

	req, err := protocol.ParseArg(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid request: %v\n", err)
		return 1
	}

	path := *socket
	if path == "" {
		cfg, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			return 1
		}
		path = cfg.Service.SocketPath
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if *timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, *timeout)
		defer cancelTimeout()
	}

	resp, err := client.Send(ctx, path, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Send failed: %v\n", err)
		return 1
	}

	_, _ = os.Stdout.Write(resp)
	if len(resp) > 0 && term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println()
	}
	return 0
}

func runDoctor(args []string) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	socket := fs.String("socket", "", "Socket path")
	jsonOut := fs.Bool("json", false, "Output result as JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := applyOverrides(cfg, serveFlags{socket: *socket}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	result := doctor.New(cfg).Validate()
	if *jsonOut {
		out, err := doctor.FormatJSON(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render JSON: %v\n", err)
			return 1
		}
		fmt.Println(out)
	} else {
		fmt.Print(doctor.FormatHuman(result))
	}

	if !result.Valid {
		return 1
	}
	return 0
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file")
	socket := fs.String("socket", "", "Socket path")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	path := *socket
	if path == "" {
		cfg, err := config.LoadOrDefault(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			return 1
		}
		path = cfg.Service.SocketPath
	}

	p := tea.NewProgram(watch.New(path))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return 1
	}
	return 0
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

func runVersion(args []string) int {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "Output version metadata as JSON")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Usage: hanpick version [--json]")
		return 1
	}

	info := currentVersionInfo()

	if *jsonOut {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render version JSON: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	fmt.Printf("hanpick %s\n", info.Version)
	fmt.Printf("commit: %s\n", info.Commit)
	fmt.Printf("built_at: %s\n", info.BuildTime)
	return 0
}

func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:   strings.TrimSpace(version),
		Commit:    "unknown",
		BuildTime: "unknown",
	}
	if info.Version == "" {
		info.Version = "0.0.0-dev"
	}

	commit := strings.TrimSpace(gitCommit)
	if commit == "" || commit == "unknown" {
		commit = strings.TrimSpace(readBuildSetting("vcs.revision"))
	}
	if commit != "" {
		info.Commit = shortenCommit(commit)
	}

	built := strings.TrimSpace(buildDate)
	if built == "" || built == "unknown" {
		built = strings.TrimSpace(readBuildSetting("vcs.time"))
	}
	if t, err := time.Parse(time.RFC3339Nano, built); err == nil {
		info.BuildTime = t.UTC().Format(time.RFC3339)
	}
	return info
}

func shortenCommit(commit string) string {
	if len(commit) <= 12 {
		return commit
	}
	return commit[:12]
}

func readBuildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}
