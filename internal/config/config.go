// Package config loads themetoggle configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/themetoggle/internal/logging"
	"github.com/opencode-ai/themetoggle/internal/theme"
)

// EnvPrefix is prepended to environment overrides (THEMETOGGLE_THEME_INITIAL, ...).
const EnvPrefix = "THEMETOGGLE"

// Config is the full application configuration.
type Config struct {
	Theme    ThemeConfig    `mapstructure:"theme"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Events   EventsConfig   `mapstructure:"events"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ThemeConfig controls the theme store.
type ThemeConfig struct {
	// Initial is the mode the store starts in.
	Initial string `mapstructure:"initial"`
}

// TUIConfig controls the terminal UI.
type TUIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives logs while the TUI runs. Empty discards them.
	File string `mapstructure:"file"`
}

// EventsConfig controls the theme change log.
type EventsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DatabaseConfig locates the event database.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// InitialMode returns the parsed initial theme mode.
func (c *Config) InitialMode() theme.Mode {
	mode, err := theme.ParseMode(c.Theme.Initial)
	if err != nil {
		return theme.DefaultMode
	}
	return mode
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error
	if _, err := theme.ParseMode(c.Theme.Initial); err != nil {
		errs = append(errs, fmt.Errorf("theme.initial: %w", err))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format: must be %q or %q, got %q", logging.FormatConsole, logging.FormatJSON, c.Logging.Format))
	}
	if c.Events.Enabled && strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path: required when events are enabled"))
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Theme:    ThemeConfig{Initial: string(theme.DefaultMode)},
		TUI:      TUIConfig{AltScreen: true},
		Logging:  LoggingConfig{Level: "info", Format: logging.FormatConsole},
		Events:   EventsConfig{Enabled: false},
		Database: DatabaseConfig{Path: filepath.Join(DataDir(), "events.db")},
	}
}

// SetDefaults registers DefaultConfig on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("theme.initial", d.Theme.Initial)
	v.SetDefault("tui.alt_screen", d.TUI.AltScreen)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("events.enabled", d.Events.Enabled)
	v.SetDefault("database.path", d.Database.Path)
}

// Load reads configuration from file (explicit path or the default location),
// environment and defaults, in increasing order of precedence: defaults, file, env.
// Flags bound on v by the caller take precedence over all of them.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// ConfigDir is $XDG_CONFIG_HOME/themetoggle (or ~/.config/themetoggle).
func ConfigDir() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "themetoggle")
}

// DataDir is $XDG_DATA_HOME/themetoggle (or ~/.local/share/themetoggle).
func DataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), "themetoggle")
}

func xdgDir(env, fallback string) string {
	if dir := strings.TrimSpace(os.Getenv(env)); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
