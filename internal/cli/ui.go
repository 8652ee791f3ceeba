package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themetoggle/internal/db"
	"github.com/opencode-ai/themetoggle/internal/events"
	"github.com/opencode-ai/themetoggle/internal/logging"
	"github.com/opencode-ai/themetoggle/internal/theme"
	"github.com/opencode-ai/themetoggle/internal/tui"
)

var uiNoAltScreen bool

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().BoolVar(&uiNoAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	// Running the binary with no subcommand opens the TUI.
	rootCmd.RunE = uiCmd.RunE
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the theme switcher TUI",
	Long:  "Launch the terminal user interface with the theme switch and product card.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "TUI requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the apply command",
			NextStep: "themetoggle apply light",
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := currentConfig()
	logCloser, err := openLogFile(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	logger := logging.Component("cli")
	store := theme.NewStore(theme.WithInitialMode(cfg.InitialMode()))

	if cfg.Events.Enabled {
		database, recorder, err := attachRecorder(ctx, store, "ui")
		if err != nil {
			return err
		}
		defer database.Close()
		defer func() {
			if err := recorder.Detach(ctx, store); err != nil && !errors.Is(err, theme.ErrSubscriberNotFound) {
				logger.Warn().Err(err).Msg("failed to detach recorder")
			}
		}()
	}

	return tui.Run(tui.Config{
		Store:     store,
		AltScreen: cfg.TUI.AltScreen && !uiNoAltScreen,
	})
}

func attachRecorder(ctx context.Context, store *theme.Store, source string) (*db.DB, *events.Recorder, error) {
	database, err := openDatabase()
	if err != nil {
		return nil, nil, err
	}
	recorder := events.NewRecorder(db.NewEventRepository(database), events.WithSource(source))
	if err := recorder.Attach(ctx, store); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return database, recorder, nil
}
