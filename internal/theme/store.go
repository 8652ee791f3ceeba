package theme

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/themetoggle/internal/logging"
)

// Store errors.
var (
	ErrSubscriberRequired   = errors.New("subscriber is required")
	ErrSubscriberIDRequired = errors.New("subscriber id is required")
	ErrSubscriberExists     = errors.New("subscriber already registered")
	ErrSubscriberNotFound   = errors.New("subscriber not found")
)

// Change describes a committed mode transition.
type Change struct {
	// Seq is the store sequence number after the change.
	Seq uint64

	// Previous is the mode before the change. Equal to Current on initial delivery.
	Previous Mode

	// Current is the committed mode.
	Current Mode

	// Timestamp is when the change was committed.
	Timestamp time.Time

	// Initial is set on the delivery made at subscription time.
	Initial bool
}

// Subscriber receives theme changes.
type Subscriber interface {
	OnThemeChange(change Change)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(change Change)

// OnThemeChange implements Subscriber.
func (f SubscriberFunc) OnThemeChange(change Change) {
	f(change)
}

type subscription struct {
	id         string
	subscriber Subscriber
}

// Store holds the current mode and notifies subscribers when it changes.
//
// Mutations and notifications are serialized by writeMu. Subscribers are called
// synchronously and must not call SetDark or SetLight from OnThemeChange.
type Store struct {
	writeMu sync.Mutex

	mu          sync.RWMutex
	mode        Mode
	seq         uint64
	changedAt   time.Time
	subscribers []subscription

	now    func() time.Time
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithInitialMode starts the store in mode. Invalid modes are ignored.
func WithInitialMode(mode Mode) Option {
	return func(s *Store) {
		if !mode.Valid() {
			s.logger.Warn().Str("mode", string(mode)).Msg("ignoring invalid initial theme mode")
			return
		}
		s.mode = mode
	}
}

// WithLogger sets the store logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for change timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a store in DefaultMode.
func NewStore(opts ...Option) *Store {
	s := &Store{
		mode:   DefaultMode,
		now:    time.Now,
		logger: logging.Component("theme"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.changedAt = s.now()
	return s
}

// Mode returns the current mode.
func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Seq returns the number of committed changes.
func (s *Store) Seq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// SubscriberCount returns the number of registered subscribers.
func (s *Store) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

// SetDark switches to dark mode.
func (s *Store) SetDark() {
	s.set(ModeDark)
}

// SetLight switches to light mode.
func (s *Store) SetLight() {
	s.set(ModeLight)
}

func (s *Store) set(mode Mode) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.mode == mode {
		s.mu.Unlock()
		return
	}
	change := Change{
		Previous:  s.mode,
		Current:   mode,
		Timestamp: s.now(),
	}
	s.mode = mode
	s.seq++
	s.changedAt = change.Timestamp
	change.Seq = s.seq
	subs := make([]subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	s.logger.Debug().
		Str("previous", string(change.Previous)).
		Str("current", string(change.Current)).
		Uint64("seq", change.Seq).
		Msg("theme changed")

	for _, sub := range subs {
		sub.subscriber.OnThemeChange(change)
	}
}

// Subscribe registers a subscriber and immediately delivers the current mode.
func (s *Store) Subscribe(id string, subscriber Subscriber) error {
	if subscriber == nil {
		return ErrSubscriberRequired
	}
	if id == "" {
		return ErrSubscriberIDRequired
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	for _, sub := range s.subscribers {
		if sub.id == id {
			s.mu.Unlock()
			return ErrSubscriberExists
		}
	}
	s.subscribers = append(s.subscribers, subscription{id: id, subscriber: subscriber})
	initial := Change{
		Seq:       s.seq,
		Previous:  s.mode,
		Current:   s.mode,
		Timestamp: s.changedAt,
		Initial:   true,
	}
	s.mu.Unlock()

	subscriber.OnThemeChange(initial)
	return nil
}

// Unsubscribe removes a subscriber.
func (s *Store) Unsubscribe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if sub.id == id {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return nil
		}
	}
	return ErrSubscriberNotFound
}
