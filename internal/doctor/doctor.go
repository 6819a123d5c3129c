// Package doctor checks a hanpick setup before (or while) the daemon runs.
package doctor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattjoyce/hanpick/internal/config"
	"github.com/mattjoyce/hanpick/internal/emoji"
	"github.com/mattjoyce/hanpick/internal/hanja"
	"github.com/mattjoyce/hanpick/internal/lock"
	"github.com/mattjoyce/hanpick/internal/tui/pick"
)

// maxSocketPath is the usable length of sun_path on Linux.
const maxSocketPath = 107

// Result holds the outcome of a validation run.
type Result struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
	Facts    []Issue `json:"facts,omitempty"`
}

// Issue describes a single finding.
type Issue struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
}

// Doctor validates a loaded configuration against the machine it runs on.
type Doctor struct {
	cfg *config.Config

	// checkTerminal is swapped out in tests.
	checkTerminal func(tty string) (int, int, error)
}

// New creates a Doctor for cfg.
func New(cfg *config.Config) *Doctor {
	return &Doctor{cfg: cfg, checkTerminal: pick.CheckTerminal}
}

// Validate runs all checks and returns a result.
func (d *Doctor) Validate() *Result {
	r := &Result{Valid: true}

	if d.cfg.SourceFile != "" {
		d.addFact(r, "config", "", "loaded from "+d.cfg.SourceFile)
	} else {
		d.addFact(r, "config", "", "using built-in defaults")
	}

	d.checkSocket(r)
	d.checkDictionary(r)
	d.checkEmoji(r)
	d.checkPicker(r)
	d.checkIndicator(r)

	r.Valid = len(r.Errors) == 0
	return r
}

func (d *Doctor) addError(r *Result, category, field, msg string) {
	r.Errors = append(r.Errors, Issue{Category: category, Field: field, Message: msg})
}

func (d *Doctor) addWarning(r *Result, category, field, msg string) {
	r.Warnings = append(r.Warnings, Issue{Category: category, Field: field, Message: msg})
}

func (d *Doctor) addFact(r *Result, category, field, msg string) {
	r.Facts = append(r.Facts, Issue{Category: category, Field: field, Message: msg})
}

func (d *Doctor) checkSocket(r *Result) {
	path := d.cfg.Service.SocketPath
	if len(path) > maxSocketPath {
		d.addError(r, "socket", "service.socket_path",
			fmt.Sprintf("socket path is %d bytes, longer than the %d byte limit", len(path), maxSocketPath))
	}

	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil {
		d.addWarning(r, "socket", "service.socket_path",
			fmt.Sprintf("directory %s does not exist yet; it will be created", dir))
	} else if !info.IsDir() {
		d.addError(r, "socket", "service.socket_path", fmt.Sprintf("%s is not a directory", dir))
	}

	lockPath := d.cfg.Service.LockFile()
	if lock.Held(lockPath) {
		msg := "a daemon is already serving this socket"
		if pid, err := lock.Owner(lockPath); err == nil {
			msg = fmt.Sprintf("%s (pid %d)", msg, pid)
		}
		d.addWarning(r, "socket", "service.lock_path", msg)
	} else if info, err := os.Lstat(path); err == nil && info.Mode()&os.ModeSocket != 0 {
		d.addFact(r, "socket", "service.socket_path", "stale socket file will be replaced on start")
	}

	d.addFact(r, "socket", "service.mode", d.cfg.Service.Mode)
}

func (d *Doctor) checkDictionary(r *Result) {
	store, stats, src, err := hanja.Load(d.cfg.Hanja)
	if err != nil {
		d.addError(r, "hanja", "hanja.dictionary_path", err.Error())
		return
	}

	d.addFact(r, "hanja", "", fmt.Sprintf("%s: %d keys, %d entries, blake3 %s",
		src.Name, store.Len(), stats.Entries, src.Digest))

	if stats.Entries == 0 {
		d.addError(r, "hanja", "hanja.dictionary_path", "dictionary has no usable entries")
	}
	if stats.Skipped > 0 {
		d.addWarning(r, "hanja", "hanja.dictionary_path",
			fmt.Sprintf("%d malformed line(s) will be ignored", stats.Skipped))
	}
	if d.cfg.Hanja.DictionaryPath == "" {
		d.addFact(r, "hanja", "hanja.dictionary_path",
			"using the embedded sample dictionary; point dictionary_path at the full kime hanja.txt")
	}
	if d.cfg.Hanja.DictionaryPath != "" && d.cfg.Hanja.DictionaryBlake3 == "" {
		d.addWarning(r, "hanja", "hanja.dictionary_blake3",
			fmt.Sprintf("custom dictionary is not pinned; set dictionary_blake3: %s", src.Digest))
	}
}

func (d *Doctor) checkEmoji(r *Result) {
	n := emoji.Store().Len()
	if n == 0 {
		d.addError(r, "emoji", "", "emoji table is empty; regenerate it with emojigen")
		return
	}
	d.addFact(r, "emoji", "", fmt.Sprintf("%d emoji", n))
}

func (d *Doctor) checkPicker(r *Result) {
	if d.cfg.Service.Mode == config.ModeLang {
		return
	}
	w, h, err := d.checkTerminal(d.cfg.Picker.TTY)
	if err != nil {
		d.addWarning(r, "picker", "picker.tty", fmt.Sprintf("picker terminal unavailable: %v", err))
		return
	}
	if h < 8 {
		d.addWarning(r, "picker", "picker.tty", fmt.Sprintf("terminal is only %d rows high", h))
	}
	d.addFact(r, "picker", "picker.tty", fmt.Sprintf("%s is %dx%d", d.cfg.Picker.TTY, w, h))
}

func (d *Doctor) checkIndicator(r *Result) {
	sf := d.cfg.Indicator.StatusFile
	if sf == "" {
		return
	}
	dir := filepath.Dir(sf)
	if info, err := os.Stat(dir); err != nil {
		d.addWarning(r, "indicator", "indicator.status_file",
			fmt.Sprintf("directory %s does not exist yet; it will be created", dir))
	} else if !info.IsDir() {
		d.addError(r, "indicator", "indicator.status_file", fmt.Sprintf("%s is not a directory", dir))
	}
}

// FormatHuman returns a human-readable validation report.
func FormatHuman(r *Result) string {
	var b strings.Builder

	switch {
	case r.Valid && len(r.Warnings) == 0:
		b.WriteString("Configuration valid.\n")
	case r.Valid:
		fmt.Fprintf(&b, "Configuration valid (%d warning(s))\n", len(r.Warnings))
	default:
		fmt.Fprintf(&b, "Configuration invalid (%d error(s), %d warning(s))\n", len(r.Errors), len(r.Warnings))
	}

	write := func(label string, issues []Issue) {
		for _, i := range issues {
			if i.Field != "" {
				fmt.Fprintf(&b, "  %s [%s] %s: %s\n", label, i.Category, i.Field, i.Message)
			} else {
				fmt.Fprintf(&b, "  %s [%s] %s\n", label, i.Category, i.Message)
			}
		}
	}
	write("ERROR", r.Errors)
	write("WARN ", r.Warnings)
	write("INFO ", r.Facts)

	return b.String()
}

// FormatJSON returns the result as indented JSON.
func FormatJSON(r *Result) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
