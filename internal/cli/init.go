package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themetoggle/internal/config"
)

var (
	initForce bool

	configDirFunc = config.ConfigDir
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := createConfigFile()
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", result.status, result.name, result.message)
		if result.status == "failed" {
			return errors.New(result.message)
		}
		return nil
	},
}

type initResult struct {
	name    string
	status  string // done, skipped, failed
	message string
}

const configTemplate = `# themetoggle configuration file

theme:
  # Mode the switch starts in: dark or light.
  initial: dark

tui:
  alt_screen: true

logging:
  level: info
  format: console
  # Logs are written here while the TUI runs. Empty discards them.
  file: ""

events:
  # Record every theme change in the SQLite log (see "themetoggle history").
  enabled: false

database:
  path: ~/.local/share/themetoggle/events.db
`

func createConfigFile() initResult {
	result := initResult{name: "Config file"}
	dir := configDirFunc()
	path := filepath.Join(dir, "config.yaml")

	if _, err := os.Stat(path); err == nil && !initForce {
		result.status = "skipped"
		result.message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("failed to create %s: %v", dir, err)
		return result
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o644); err != nil {
		result.status = "failed"
		result.message = fmt.Sprintf("failed to write %s: %v", path, err)
		return result
	}

	result.status = "done"
	result.message = fmt.Sprintf("wrote %s", path)
	return result
}
