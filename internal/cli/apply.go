package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themetoggle/internal/surface"
	"github.com/opencode-ai/themetoggle/internal/theme"
	"github.com/opencode-ai/themetoggle/internal/themesync"
)

var (
	applyJSON bool
	applyYAML bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "output as JSON")
	applyCmd.Flags().BoolVar(&applyYAML, "yaml", false, "output as YAML")
	applyCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

var applyCmd = &cobra.Command{
	Use:   "apply [dark|light]...",
	Short: "Apply theme switches without the TUI",
	Long: `Start a theme store, apply each mode in order through the matching switch,
and print the final mode and the markers on the root surface.`,
	Example: `  themetoggle apply light
  themetoggle apply light dark --json
  themetoggle apply dark light --yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modes, err := parseModes(args)
		if err != nil {
			return err
		}

		cfg := currentConfig()
		store := theme.NewStore(theme.WithInitialMode(cfg.InitialMode()))

		if cfg.Events.Enabled {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			database, recorder, err := attachRecorder(ctx, store, "apply")
			if err != nil {
				return err
			}
			defer database.Close()
			defer func() { _ = recorder.Detach(ctx, store) }()
		}

		result, err := applyModes(store, surface.NewRoot(), modes)
		if err != nil {
			return err
		}
		return writeApplyResult(cmd.OutOrStdout(), result, selectFormat(applyJSON, applyYAML))
	},
}

type applyResult struct {
	Mode    theme.Mode `json:"mode" yaml:"mode"`
	Markers []string   `json:"markers" yaml:"markers"`
	Changes uint64     `json:"changes" yaml:"changes"`
}

func parseModes(args []string) ([]theme.Mode, error) {
	modes := make([]theme.Mode, 0, len(args))
	for _, arg := range args {
		mode, err := theme.ParseMode(arg)
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func applyModes(store *theme.Store, root *surface.Root, modes []theme.Mode) (applyResult, error) {
	if err := themesync.New(root).Attach(store); err != nil {
		return applyResult{}, fmt.Errorf("attach theme sync: %w", err)
	}

	ctx := store.Context()
	for _, mode := range modes {
		switch mode {
		case theme.ModeDark:
			ctx.SetDark()
		case theme.ModeLight:
			ctx.SetLight()
		}
	}

	return applyResult{
		Mode:    store.Mode(),
		Markers: root.Classes(),
		Changes: store.Seq(),
	}, nil
}

func writeApplyResult(out io.Writer, result applyResult, format outputFormat) error {
	if format != formatText {
		return writeStructured(out, result, format)
	}
	return writeTable(out, nil, [][]string{
		{"mode:", result.Mode.String()},
		{"root class:", fmt.Sprintf("%q", joinMarkers(result.Markers))},
		{"changes:", fmt.Sprintf("%d", result.Changes)},
	})
}
