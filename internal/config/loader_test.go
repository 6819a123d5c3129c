package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
		checkFn func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty document gets defaults",
			yaml: ``,
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.Service.Mode != ModeCombined {
					t.Errorf("mode = %q, want combined", cfg.Service.Mode)
				}
				if cfg.Service.SocketPath != DefaultSocketPath {
					t.Errorf("socket_path = %q", cfg.Service.SocketPath)
				}
				if cfg.Service.MaxRequestBytes != 4096 {
					t.Errorf("max_request_bytes = %d", cfg.Service.MaxRequestBytes)
				}
				if cfg.Hanja.MissPolicy != MissSilent {
					t.Errorf("miss_policy = %q", cfg.Hanja.MissPolicy)
				}
				if cfg.Indicator.Color != ColorBlack {
					t.Errorf("color = %q", cfg.Indicator.Color)
				}
			},
		},
		{
			name: "full config",
			yaml: `
service:
  mode: hanja
  socket_path: /run/user/1000/hanja.sock
  socket_permissions: "0660"
  max_request_bytes: 256
  request_timeout: 2s
  log_level: debug
  log_format: text
hanja:
  miss_policy: search
indicator:
  color: white
  status_file: /run/user/1000/hanpick.status
picker:
  tty: /dev/pts/3
  height: 12
`,
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.Service.Mode != ModeHanja {
					t.Errorf("mode = %q", cfg.Service.Mode)
				}
				if cfg.Service.RequestTimeout != 2*time.Second {
					t.Errorf("request_timeout = %v", cfg.Service.RequestTimeout)
				}
				if cfg.Service.MaxRequestBytes != 256 {
					t.Errorf("max_request_bytes = %d", cfg.Service.MaxRequestBytes)
				}
				if cfg.Hanja.MissPolicy != MissSearch {
					t.Errorf("miss_policy = %q", cfg.Hanja.MissPolicy)
				}
				if cfg.Indicator.Color != ColorWhite {
					t.Errorf("color = %q", cfg.Indicator.Color)
				}
				if cfg.Picker.TTY != "/dev/pts/3" || cfg.Picker.Height != 12 {
					t.Errorf("picker = %+v", cfg.Picker)
				}
				if cfg.Service.LockFile() != "/run/user/1000/hanja.sock.lock" {
					t.Errorf("lock file = %q", cfg.Service.LockFile())
				}
			},
		},
		{
			name: "env interpolation",
			yaml: `
service:
  socket_path: ${HANPICK_TEST_RUNTIME}/kime.sock
`,
			env: map[string]string{"HANPICK_TEST_RUNTIME": "/run/user/42"},
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.Service.SocketPath != "/run/user/42/kime.sock" {
					t.Errorf("socket_path = %q", cfg.Service.SocketPath)
				}
			},
		},
		{
			name:    "unknown mode",
			yaml:    "service:\n  mode: network\n",
			wantErr: "service.mode",
		},
		{
			name:    "relative socket",
			yaml:    "service:\n  socket_path: kime.sock\n",
			wantErr: "must be absolute",
		},
		{
			name:    "bad permissions",
			yaml:    "service:\n  socket_permissions: \"rw\"\n",
			wantErr: "socket_permissions",
		},
		{
			name:    "bad miss policy",
			yaml:    "hanja:\n  miss_policy: guess\n",
			wantErr: "miss_policy",
		},
		{
			name:    "bad color",
			yaml:    "indicator:\n  color: purple\n",
			wantErr: "indicator.color",
		},
		{
			name:    "short digest",
			yaml:    "hanja:\n  dictionary_blake3: abc\n",
			wantErr: "dictionary_blake3",
		},
		{
			name:    "broken yaml",
			yaml:    "service: [",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if tt.checkFn != nil {
				tt.checkFn(t, cfg)
			}
		})
	}
}

func TestLoadRecordsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("service:\n  mode: emoji\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SourceFile != path {
		t.Errorf("SourceFile = %q, want %q", cfg.SourceFile, path)
	}
	if cfg.Service.Mode != ModeEmoji {
		t.Errorf("mode = %q", cfg.Service.Mode)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadOrDefaultUsesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hp.yaml")
	if err := os.WriteFile(path, []byte("hanja:\n  miss_policy: echo\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HANPICK_CONFIG", path)

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Hanja.MissPolicy != MissEcho {
		t.Errorf("miss_policy = %q, want echo", cfg.Hanja.MissPolicy)
	}
}

func TestDiscoverBadEnv(t *testing.T) {
	t.Setenv("HANPICK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Discover(); err == nil {
		t.Fatal("expected error for missing HANPICK_CONFIG target")
	}
}

func TestParseFileMode(t *testing.T) {
	tests := []struct {
		in      string
		want    os.FileMode
		wantErr bool
	}{
		{"0600", 0o600, false},
		{"660", 0o660, false},
		{"0777", 0o777, false},
		{"1777", 0, true},
		{"rw-", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFileMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFileMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFileMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
