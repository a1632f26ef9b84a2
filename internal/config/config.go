package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/kievzenit/naja/internal/compiler_errors"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "NAJA_CONFIG"

// Config holds the settings of the naja command line tools
type Config struct {
	LogLevel string       `toml:"log_level"`
	Repl     ReplConfig   `toml:"repl"`
	Output   OutputConfig `toml:"output"`
	Watch    WatchConfig  `toml:"watch"`
}

// ReplConfig holds interactive prompt settings
type ReplConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// OutputConfig controls how results and diagnostics are printed
type OutputConfig struct {
	Color             bool   `toml:"color"`
	DiagnosticsFormat string `toml:"diagnostics_format"`
	Dump              bool   `toml:"dump"`
}

// WatchConfig holds settings for re-running a tool when its input changes
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Repl: ReplConfig{
			Prompt:      "naja> ",
			HistoryFile: "~/.naja_history",
		},
		Output: OutputConfig{
			Color:             true,
			DiagnosticsFormat: string(compiler_errors.FormatText),
		},
		Watch: WatchConfig{
			Debounce: Duration{100 * time.Millisecond},
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by NAJA_CONFIG, or the first config found
// in the usual locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	candidates := []string{"./naja.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "naja", "config.toml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	cfg := Default()
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	format, err := compiler_errors.ParseFormat(c.Output.DiagnosticsFormat)
	if err != nil {
		return err
	}
	c.Output.DiagnosticsFormat = string(format)

	if c.Repl.Prompt == "" {
		c.Repl.Prompt = "naja> "
	}
	c.Repl.HistoryFile = expandHome(os.ExpandEnv(c.Repl.HistoryFile))

	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %s", c.Watch.Debounce)
	}

	return nil
}

// SlogLevel returns the configured log level for log/slog.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// Format returns the configured diagnostics format.
func (c *Config) Format() compiler_errors.Format {
	format, err := compiler_errors.ParseFormat(c.Output.DiagnosticsFormat)
	if err != nil {
		return compiler_errors.FormatText
	}
	return format
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
