// Package cli implements the themetoggle command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opencode-ai/themetoggle/internal/config"
	"github.com/opencode-ai/themetoggle/internal/db"
	"github.com/opencode-ai/themetoggle/internal/logging"
)

var (
	cfgFile        string
	nonInteractive bool

	v         = viper.New()
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themetoggle",
	Short: "Dark/light theme switcher",
	Long: `themetoggle renders a product card under a dark/light theme switch.

The theme store starts dark. Every switch updates the marker on the root
surface, and the styles are chosen from that marker.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/themetoggle/config.yaml)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the TUI")

	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logging.format", flags.Lookup("log-format"))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	cfg := config.DefaultConfig()
	return &cfg
}

func openDatabase() (*db.DB, error) {
	cfg := currentConfig()
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := database.MigrateUp(context.Background()); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// openLogFile redirects logging to the configured file while the TUI owns the
// terminal. With no file configured logging is discarded.
func openLogFile(cfg *config.Config) (io.Closer, error) {
	if cfg.Logging.File == "" {
		logging.Discard()
		return io.NopCloser(nil), nil
	}
	file, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := logging.Init(logging.Config{Level: cfg.Logging.Level, Format: logging.FormatJSON, Output: file}); err != nil {
		_ = file.Close()
		return nil, err
	}
	return file, nil
}
