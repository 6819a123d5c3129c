package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Default returns the configuration used when no file is found.
func Default() *Config {
	return applyDefaults(&Config{})
}

// Load reads and parses configuration from a file.
func Load(configPath string) (*Config, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %q: %w", configPath, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %s\n"+
			"Hint: Check the path or run with --config flag", absPath)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", absPath, err)
	}
	cfg.SourceFile = absPath
	return cfg, nil
}

// Parse decodes YAML, expands ${VAR} references, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	expanded := interpolateEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Discover finds a config file. Priority order: $HANPICK_CONFIG,
// ~/.config/hanpick/config.yaml, /etc/hanpick/config.yaml.
// An empty path and nil error mean "use defaults".
func Discover() (string, error) {
	if p := os.Getenv("HANPICK_CONFIG"); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("HANPICK_CONFIG points at %s: %w", p, err)
		}
		return p, nil
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		userConfig := filepath.Join(homeDir, ".config", "hanpick", "config.yaml")
		if _, err := os.Stat(userConfig); err == nil {
			return userConfig, nil
		}
	}

	systemConfig := "/etc/hanpick/config.yaml"
	if _, err := os.Stat(systemConfig); err == nil {
		return systemConfig, nil
	}

	return "", nil
}

// LoadOrDefault loads path when given, otherwise the discovered file, otherwise defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		discovered, err := Discover()
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// interpolateEnv replaces ${VAR} with the environment value. Unset variables
// expand to the empty string.
func interpolateEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}

func applyDefaults(cfg *Config) *Config {
	if cfg.Service.Mode == "" {
		cfg.Service.Mode = ModeCombined
	}
	if cfg.Service.SocketPath == "" {
		cfg.Service.SocketPath = DefaultSocketPath
	}
	if cfg.Service.SocketPermissions == "" {
		cfg.Service.SocketPermissions = "0600"
	}
	if cfg.Service.MaxRequestBytes == 0 {
		cfg.Service.MaxRequestBytes = 4096
	}
	if cfg.Service.LogLevel == "" {
		cfg.Service.LogLevel = "info"
	}
	if cfg.Service.LogFormat == "" {
		cfg.Service.LogFormat = "json"
	}
	if cfg.Hanja.MissPolicy == "" {
		cfg.Hanja.MissPolicy = MissSilent
	}
	if cfg.Indicator.Color == "" {
		cfg.Indicator.Color = ColorBlack
	}
	if cfg.Picker.TTY == "" {
		cfg.Picker.TTY = "/dev/tty"
	}
	if cfg.Picker.Height == 0 {
		cfg.Picker.Height = 20
	}
	return cfg
}

func validate(cfg *Config) error {
	var problems []string

	switch cfg.Service.Mode {
	case ModeCombined, ModeHanja, ModeEmoji, ModeLang:
	default:
		problems = append(problems, fmt.Sprintf("service.mode %q must be one of combined, hanja, emoji, lang", cfg.Service.Mode))
	}
	if !filepath.IsAbs(cfg.Service.SocketPath) {
		problems = append(problems, fmt.Sprintf("service.socket_path %q must be absolute", cfg.Service.SocketPath))
	}
	if _, err := ParseFileMode(cfg.Service.SocketPermissions); err != nil {
		problems = append(problems, fmt.Sprintf("service.socket_permissions: %v", err))
	}
	if cfg.Service.MaxRequestBytes < 2 {
		problems = append(problems, "service.max_request_bytes must be at least 2")
	}
	if cfg.Service.RequestTimeout < 0 {
		problems = append(problems, "service.request_timeout must not be negative")
	}

	switch cfg.Hanja.MissPolicy {
	case MissSilent, MissEcho, MissSearch:
	default:
		problems = append(problems, fmt.Sprintf("hanja.miss_policy %q must be one of silent, echo, search", cfg.Hanja.MissPolicy))
	}
	if d := cfg.Hanja.DictionaryBlake3; d != "" && len(d) != 64 {
		problems = append(problems, "hanja.dictionary_blake3 must be a 64 character hex digest")
	}

	switch cfg.Indicator.Color {
	case ColorBlack, ColorWhite:
	default:
		problems = append(problems, fmt.Sprintf("indicator.color %q must be black or white", cfg.Indicator.Color))
	}

	if cfg.Picker.Height < 3 {
		problems = append(problems, "picker.height must be at least 3")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// ParseFileMode parses an octal permission string such as "0600".
func ParseFileMode(s string) (os.FileMode, error) {
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal mode %q", s)
	}
	if mode > 0o777 {
		return 0, fmt.Errorf("mode %q out of range", s)
	}
	return os.FileMode(mode), nil
}
