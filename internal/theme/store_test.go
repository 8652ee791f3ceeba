package theme

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	mu      sync.Mutex
	changes []Change
}

func (r *recordingSubscriber) OnThemeChange(change Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
}

func (r *recordingSubscriber) all() []Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Change, len(r.changes))
	copy(out, r.changes)
	return out
}

func TestNewStoreStartsDark(t *testing.T) {
	store := NewStore()
	require.Equal(t, ModeDark, store.Mode())
	require.Zero(t, store.Seq())
}

func TestWithInitialMode(t *testing.T) {
	require.Equal(t, ModeLight, NewStore(WithInitialMode(ModeLight)).Mode())
	require.Equal(t, ModeDark, NewStore(WithInitialMode(Mode("sepia"))).Mode())
}

func TestSetLightThenDark(t *testing.T) {
	store := NewStore()

	store.SetLight()
	require.Equal(t, ModeLight, store.Mode())

	store.SetDark()
	require.Equal(t, ModeDark, store.Mode())
	require.Equal(t, uint64(2), store.Seq())
}

func TestSetIsIdempotent(t *testing.T) {
	store := NewStore()
	rec := &recordingSubscriber{}
	require.NoError(t, store.Subscribe("rec", rec))

	store.SetDark()
	store.SetDark()

	require.Equal(t, ModeDark, store.Mode())
	require.Zero(t, store.Seq())
	require.Len(t, rec.all(), 1, "only the initial delivery is expected")
}

func TestLastCallWins(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		store := NewStore()
		var last Mode
		n := rng.Intn(12)
		for j := 0; j < n; j++ {
			if rng.Intn(2) == 0 {
				store.SetDark()
				last = ModeDark
			} else {
				store.SetLight()
				last = ModeLight
			}
		}
		if n == 0 {
			last = DefaultMode
		}
		require.Equal(t, last, store.Mode(), "sequence %d", i)
	}
}

func TestSubscribeDeliversInitialValue(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store := NewStore(WithInitialMode(ModeLight), WithClock(func() time.Time { return fixed }))
	rec := &recordingSubscriber{}

	require.NoError(t, store.Subscribe("rec", rec))

	changes := rec.all()
	require.Len(t, changes, 1)
	assert.True(t, changes[0].Initial)
	assert.Equal(t, ModeLight, changes[0].Current)
	assert.Equal(t, ModeLight, changes[0].Previous)
	assert.Equal(t, fixed, changes[0].Timestamp)
}

func TestNotifyOnChange(t *testing.T) {
	store := NewStore()
	rec := &recordingSubscriber{}
	require.NoError(t, store.Subscribe("rec", rec))

	store.SetLight()
	store.SetDark()

	changes := rec.all()
	require.Len(t, changes, 3)
	assert.Equal(t, Change{Seq: 1, Previous: ModeDark, Current: ModeLight, Timestamp: changes[1].Timestamp}, changes[1])
	assert.Equal(t, uint64(2), changes[2].Seq)
	assert.Equal(t, ModeLight, changes[2].Previous)
	assert.Equal(t, ModeDark, changes[2].Current)
	assert.False(t, changes[2].Initial)
}

func TestSubscribersNotifiedInOrder(t *testing.T) {
	store := NewStore()
	var order []string
	for _, id := range []string{"a", "b", "c"} {
		id := id
		require.NoError(t, store.Subscribe(id, SubscriberFunc(func(change Change) {
			if !change.Initial {
				order = append(order, id)
			}
		})))
	}

	store.SetLight()
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSubscribeErrors(t *testing.T) {
	store := NewStore()
	rec := &recordingSubscriber{}

	require.ErrorIs(t, store.Subscribe("x", nil), ErrSubscriberRequired)
	require.ErrorIs(t, store.Subscribe("", rec), ErrSubscriberIDRequired)
	require.NoError(t, store.Subscribe("x", rec))
	require.ErrorIs(t, store.Subscribe("x", rec), ErrSubscriberExists)
	require.Equal(t, 1, store.SubscriberCount())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	store := NewStore()
	rec := &recordingSubscriber{}
	require.NoError(t, store.Subscribe("rec", rec))
	require.NoError(t, store.Unsubscribe("rec"))
	require.ErrorIs(t, store.Unsubscribe("rec"), ErrSubscriberNotFound)

	store.SetLight()
	require.Len(t, rec.all(), 1)
	require.Zero(t, store.SubscriberCount())
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	store := NewStore()
	calls := 0
	require.NoError(t, store.Subscribe("once", SubscriberFunc(func(change Change) {
		if change.Initial {
			return
		}
		calls++
		_ = store.Unsubscribe("once")
	})))

	store.SetLight()
	store.SetDark()
	require.Equal(t, 1, calls)
}

func TestContextSnapshot(t *testing.T) {
	store := NewStore()
	ctx := store.Context()
	require.True(t, ctx.IsDark())

	ctx.SetLight()
	require.Equal(t, ModeLight, store.Mode())
	require.Equal(t, ModeDark, ctx.Mode, "a context is a snapshot")
	require.Equal(t, ModeLight, store.Context().Mode)

	store.Context().SetDark()
	require.Equal(t, ModeDark, store.Mode())
}

func TestConcurrentMutatorsKeepModeValid(t *testing.T) {
	store := NewStore()
	seen := make(chan Mode, 1024)
	require.NoError(t, store.Subscribe("rec", SubscriberFunc(func(change Change) {
		select {
		case seen <- change.Current:
		default:
		}
	})))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if (i+j)%2 == 0 {
					store.SetDark()
				} else {
					store.SetLight()
				}
				_ = store.Mode()
			}
		}(i)
	}
	wg.Wait()
	close(seen)

	require.True(t, store.Mode().Valid())
	for mode := range seen {
		require.True(t, mode.Valid())
	}
}
