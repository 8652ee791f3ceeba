package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themetoggle/internal/logging"
	"github.com/opencode-ai/themetoggle/internal/models"
	"github.com/opencode-ai/themetoggle/internal/theme"
)

// RecorderSubscriberID is the id Attach registers under.
const RecorderSubscriberID = "events-recorder"

const defaultWriteTimeout = 2 * time.Second

// Recorder is a theme subscriber that writes every committed change to the log.
// Write failures are logged; they never reach the mutator.
type Recorder struct {
	repo      Repository
	sessionID string
	timeout   time.Duration
	logger    zerolog.Logger
}

var _ theme.Subscriber = (*Recorder)(nil)

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithSource tags every event the recorder writes with metadata source=name,
// naming the command that drove the theme changes.
func WithSource(name string) RecorderOption {
	return func(r *Recorder) {
		if name != "" && r.repo != nil {
			r.repo = sourceRepository{Repository: r.repo, source: name}
		}
	}
}

// NewRecorder creates a recorder with a fresh session id.
func NewRecorder(repo Repository, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		repo:      repo,
		sessionID: uuid.NewString(),
		timeout:   defaultWriteTimeout,
		logger:    logging.Component("events"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SessionID identifies the writes of this recorder.
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Attach subscribes r to store and logs the session start.
func (r *Recorder) Attach(ctx context.Context, store *theme.Store) error {
	if err := LogSession(ctx, r.repo, r.sessionID, models.EventTypeSessionStarted, store.Mode()); err != nil {
		r.logger.Warn().Err(err).Msg("failed to record session start")
	}
	return store.Subscribe(RecorderSubscriberID, r)
}

// Detach unsubscribes r and logs the session end.
func (r *Recorder) Detach(ctx context.Context, store *theme.Store) error {
	err := store.Unsubscribe(RecorderSubscriberID)
	if logErr := LogSession(ctx, r.repo, r.sessionID, models.EventTypeSessionEnded, store.Mode()); logErr != nil {
		r.logger.Warn().Err(logErr).Msg("failed to record session end")
	}
	return err
}

// OnThemeChange implements theme.Subscriber.
func (r *Recorder) OnThemeChange(change theme.Change) {
	if change.Initial {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := LogThemeChanged(ctx, r.repo, r.sessionID, change); err != nil {
		r.logger.Warn().Err(err).Uint64("seq", change.Seq).Msg("failed to record theme change")
	}
}

// MetadataSource is the metadata key WithSource writes.
const MetadataSource = "source"

type sourceRepository struct {
	Repository
	source string
}

func (r sourceRepository) Append(ctx context.Context, event *models.Event) error {
	if event != nil {
		if event.Metadata == nil {
			event.Metadata = make(map[string]string, 1)
		}
		event.Metadata[MetadataSource] = r.source
	}
	return r.Repository.Append(ctx, event)
}
