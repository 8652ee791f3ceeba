package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themetoggle/internal/db"
	"github.com/opencode-ai/themetoggle/internal/events"
	"github.com/opencode-ai/themetoggle/internal/models"
)

var (
	historyLimit   int
	historySession string
	historyJSON    bool
	historyYAML    bool
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of changes to show")
	historyCmd.Flags().StringVar(&historySession, "session", "", "only show changes from this session id")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().BoolVar(&historyYAML, "yaml", false, "output as YAML")
	historyCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded theme changes",
	Long:  "Show theme changes recorded while events.enabled is set. The log is never used to pick a starting mode.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		entries, err := loadHistory(ctx, db.NewEventRepository(database), historySession, historyLimit)
		if err != nil {
			return err
		}
		return writeHistory(cmd.OutOrStdout(), entries, selectFormat(historyJSON, historyYAML))
	},
}

type historyEntry struct {
	Time     time.Time `json:"time" yaml:"time"`
	Session  string    `json:"session" yaml:"session"`
	Source   string    `json:"source,omitempty" yaml:"source,omitempty"`
	Seq      uint64    `json:"seq" yaml:"seq"`
	Previous string    `json:"previous" yaml:"previous"`
	Current  string    `json:"current" yaml:"current"`
}

type eventQuerier interface {
	Query(ctx context.Context, q db.EventQuery) (*db.EventPage, error)
}

func loadHistory(ctx context.Context, repo eventQuerier, session string, limit int) ([]historyEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	eventType := models.EventTypeThemeChanged
	q := db.EventQuery{Type: &eventType, Limit: limit, Newest: true}
	if session != "" {
		q.EntityID = &session
	}

	page, err := repo.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	// The page is newest first; print oldest first.
	entries := make([]historyEntry, len(page.Events))
	for i, event := range page.Events {
		var payload models.ThemeChangedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode event %s: %w", event.ID, err)
		}
		entries[len(entries)-1-i] = historyEntry{
			Time:     event.Timestamp,
			Session:  event.EntityID,
			Source:   event.Metadata[events.MetadataSource],
			Seq:      payload.Seq,
			Previous: payload.Previous,
			Current:  payload.Current,
		}
	}
	return entries, nil
}

func writeHistory(out io.Writer, entries []historyEntry, format outputFormat) error {
	if format != formatText {
		if entries == nil {
			entries = []historyEntry{}
		}
		return writeStructured(out, entries, format)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, "No theme changes recorded.")
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Time.Local().Format("2006-01-02 15:04:05"),
			shortID(e.Session),
			sourceLabel(e.Source),
			fmt.Sprintf("%d", e.Seq),
			e.Previous + " -> " + e.Current,
		})
	}
	return writeTable(out, []string{"TIME", "SESSION", "SOURCE", "SEQ", "CHANGE"}, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func sourceLabel(source string) string {
	if source == "" {
		return "-"
	}
	return source
}
