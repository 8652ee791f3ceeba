// Package themesync keeps the root surface's theme marker in step with the theme store.
package themesync

import (
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themetoggle/internal/logging"
	"github.com/opencode-ai/themetoggle/internal/surface"
	"github.com/opencode-ai/themetoggle/internal/theme"
)

// SubscriberID is the id Attach registers under.
const SubscriberID = "themesync"

// Sync applies the marker for the current mode to a class list.
type Sync struct {
	target surface.ClassList
	logger zerolog.Logger
}

var _ theme.Subscriber = (*Sync)(nil)

// Option configures a Sync.
type Option func(*Sync)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Sync) {
		s.logger = logger
	}
}

// New creates a Sync writing to target.
func New(target surface.ClassList, opts ...Option) *Sync {
	if root, ok := target.(*surface.Root); ok && root == nil {
		target = nil
	}
	s := &Sync{
		target: target,
		logger: logging.Component("themesync"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach subscribes s to store. The current mode is applied immediately.
func (s *Sync) Attach(store *theme.Store) error {
	return store.Subscribe(SubscriberID, s)
}

// OnThemeChange implements theme.Subscriber.
func (s *Sync) OnThemeChange(change theme.Change) {
	s.Apply(change.Current)
}

// Apply clears the markers of every known mode, then sets the marker for mode,
// as one swap on the target. Unknown modes leave the markers untouched.
func (s *Sync) Apply(mode theme.Mode) {
	if !mode.Valid() {
		s.logger.Warn().Str("mode", mode.String()).Msg("ignoring unknown theme mode")
		return
	}
	if s.target == nil {
		s.logger.Warn().Str("mode", mode.String()).Msg("no rendering surface; theme marker not applied")
		return
	}

	known := theme.Modes()
	markers := make([]string, len(known))
	for i, m := range known {
		markers[i] = m.String()
	}

	s.target.ReplaceClasses(markers, mode.String())

	s.logger.Debug().Str("mode", mode.String()).Msg("theme marker applied")
}
