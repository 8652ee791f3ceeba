package db

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themetoggle/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	_, err = database.MigrateUp(context.Background())
	require.NoError(t, err)
	return database
}

func themeEvent(at time.Time, seq uint64, current string) *models.Event {
	payload, _ := json.Marshal(models.ThemeChangedPayload{Seq: seq, Current: current})
	return &models.Event{
		Timestamp:  at,
		Type:       models.EventTypeThemeChanged,
		EntityType: models.EntityTypeTheme,
		EntityID:   "session-1",
		Payload:    payload,
		Metadata:   map[string]string{"source": "test"},
	}
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	database, err := OpenInMemory()
	require.NoError(t, err)
	defer database.Close()

	applied, err := database.MigrateUp(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, applied)

	applied, err = database.MigrateUp(ctx)
	require.NoError(t, err)
	require.Zero(t, applied)

	version, err := database.SchemaVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, version)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "events.db")
	database, err := Open(path)
	require.NoError(t, err)
	defer database.Close()

	require.Equal(t, path, database.Path())
	_, err = database.MigrateUp(context.Background())
	require.NoError(t, err)

	_, err = Open("  ")
	require.Error(t, err)
}

func TestEventRepositoryAppendAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))

	at := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	event := themeEvent(at, 1, "light")
	require.NoError(t, repo.Append(ctx, event))
	require.NotEmpty(t, event.ID)

	got, err := repo.Get(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, event.ID, got.ID)
	require.Equal(t, models.EventTypeThemeChanged, got.Type)
	require.Equal(t, models.EntityTypeTheme, got.EntityType)
	require.True(t, at.Equal(got.Timestamp))
	require.Equal(t, "test", got.Metadata["source"])

	var payload models.ThemeChangedPayload
	require.NoError(t, json.Unmarshal(got.Payload, &payload))
	require.Equal(t, "light", payload.Current)
	require.Equal(t, uint64(1), payload.Seq)
}

func TestEventRepositoryGetMissing(t *testing.T) {
	repo := NewEventRepository(openTestDB(t))
	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepositoryAppendValidates(t *testing.T) {
	repo := NewEventRepository(openTestDB(t))
	err := repo.Append(context.Background(), &models.Event{Type: models.EventTypeThemeChanged})
	require.True(t, errors.Is(err, ErrInvalidEvent))
	require.True(t, errors.Is(err, models.ErrInvalidEvent))
	require.Equal(t, "invalid event: missing entity_type, entity_id", err.Error())

	require.Error(t, repo.Append(context.Background(), nil))

	count, err := repo.Count(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestEventRepositoryQueryPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	modes := []string{"light", "dark", "light", "dark", "light"}
	for i, mode := range modes {
		require.NoError(t, repo.Append(ctx, themeEvent(base.Add(time.Duration(i)*time.Millisecond), uint64(i+1), mode)))
	}

	page, err := repo.Query(ctx, EventQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
	require.NotEmpty(t, page.NextCursor)

	var seen []string
	cursor := ""
	for {
		page, err := repo.Query(ctx, EventQuery{Limit: 2, Cursor: cursor})
		require.NoError(t, err)
		for _, e := range page.Events {
			var payload models.ThemeChangedPayload
			require.NoError(t, json.Unmarshal(e.Payload, &payload))
			seen = append(seen, payload.Current)
		}
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}
	require.Equal(t, modes, seen)
}

func TestEventRepositoryQueryFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, themeEvent(base, 1, "light")))
	require.NoError(t, repo.Append(ctx, themeEvent(base.Add(time.Second), 2, "dark")))
	require.NoError(t, repo.Append(ctx, &models.Event{
		Timestamp:  base.Add(2 * time.Second),
		Type:       models.EventTypeSessionEnded,
		EntityType: models.EntityTypeSession,
		EntityID:   "session-1",
	}))

	themeType := models.EventTypeThemeChanged
	page, err := repo.Query(ctx, EventQuery{Type: &themeType})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)

	since := base.Add(time.Second)
	page, err = repo.Query(ctx, EventQuery{Since: &since})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)

	until := base.Add(time.Second)
	page, err = repo.Query(ctx, EventQuery{Until: &until})
	require.NoError(t, err)
	require.Len(t, page.Events, 1)

	sessionType := models.EntityTypeSession
	entityID := "session-1"
	page, err = repo.Query(ctx, EventQuery{EntityType: &sessionType, EntityID: &entityID})
	require.NoError(t, err)
	require.Len(t, page.Events, 1)

	count, err := repo.Count(ctx, &themeType)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = repo.Count(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func TestEventRepositoryQueryNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Append(ctx, themeEvent(base.Add(time.Duration(i)*time.Millisecond), uint64(i), "light")))
	}

	seqs := func(page *EventPage) []uint64 {
		var out []uint64
		for _, e := range page.Events {
			var payload models.ThemeChangedPayload
			require.NoError(t, json.Unmarshal(e.Payload, &payload))
			out = append(out, payload.Seq)
		}
		return out
	}

	page, err := repo.Query(ctx, EventQuery{Limit: 2, Newest: true})
	require.NoError(t, err)
	require.Equal(t, []uint64{5, 4}, seqs(page))
	require.NotEmpty(t, page.NextCursor)

	page, err = repo.Query(ctx, EventQuery{Limit: 2, Newest: true, Cursor: page.NextCursor})
	require.NoError(t, err)
	require.Equal(t, []uint64{3, 2}, seqs(page))
}
