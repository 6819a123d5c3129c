package config

import "time"

// Config represents the complete hanpick configuration.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Hanja     HanjaConfig     `yaml:"hanja"`
	Indicator IndicatorConfig `yaml:"indicator"`
	Picker    PickerConfig    `yaml:"picker"`

	// SourceFile is the file the config was read from; empty for defaults.
	SourceFile string `yaml:"-"`
}

// ServiceConfig defines the socket service settings.
type ServiceConfig struct {
	Mode              string        `yaml:"mode"` // combined | hanja | emoji | lang
	SocketPath        string        `yaml:"socket_path"`
	SocketPermissions string        `yaml:"socket_permissions"`
	LockPath          string        `yaml:"lock_path,omitempty"` // default <socket_path>.lock
	MaxRequestBytes   int           `yaml:"max_request_bytes"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	LogLevel          string        `yaml:"log_level"`
	LogFormat         string        `yaml:"log_format"`
}

// HanjaConfig defines dictionary settings.
type HanjaConfig struct {
	// DictionaryPath overrides the embedded dictionary when set.
	DictionaryPath string `yaml:"dictionary_path,omitempty"`
	// DictionaryBlake3 is the expected hex BLAKE3 digest of the dictionary.
	DictionaryBlake3 string `yaml:"dictionary_blake3,omitempty"`
	MissPolicy       string `yaml:"miss_policy"` // silent | echo | search
}

// IndicatorConfig defines the language indicator settings.
type IndicatorConfig struct {
	Color      string `yaml:"color"` // black | white
	StatusFile string `yaml:"status_file,omitempty"`
}

// PickerConfig defines the terminal picker settings.
type PickerConfig struct {
	TTY    string `yaml:"tty"`
	Height int    `yaml:"height"`
}

// Service modes.
const (
	ModeCombined = "combined"
	ModeHanja    = "hanja"
	ModeEmoji    = "emoji"
	ModeLang     = "lang"
)

// Miss policies.
const (
	MissSilent = "silent"
	MissEcho   = "echo"
	MissSearch = "search"
)

// Icon colors.
const (
	ColorBlack = "black"
	ColorWhite = "white"
)

// DefaultSocketPath is the well-known socket the input method connects to.
const DefaultSocketPath = "/tmp/kime_window.sock"

// LockFile returns the configured lock path or the one derived from the socket.
func (s ServiceConfig) LockFile() string {
	if s.LockPath != "" {
		return s.LockPath
	}
	return s.SocketPath + ".lock"
}
