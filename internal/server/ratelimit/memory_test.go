package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	entry, err := s.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestMemoryStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	defer s.Stop()

	now := time.Now()
	err := s.Put(ctx, "alice", &Entry{Count: 3, LastAttempt: now})
	require.NoError(t, err)

	entry, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.Count)
	assert.Equal(t, now, entry.LastAttempt)

	// Get возвращает копию - мутация не должна попасть в store
	entry.Count = 100

	fresh, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Count)
}

func TestMemoryStore_RemoveStale(t *testing.T) {
	ctx := context.Background()
	window := time.Minute
	s := NewMemoryStore(window)
	defer s.Stop()

	now := time.Now()

	// Запись без активности дольше 2*window
	require.NoError(t, s.Put(ctx, "stale", &Entry{
		Count:       2,
		LastAttempt: now.Add(-3 * window),
	}))

	// Свежая запись
	require.NoError(t, s.Put(ctx, "fresh", &Entry{
		Count:       1,
		LastAttempt: now,
	}))

	// Старая, но с действующей блокировкой - должна пережить очистку
	require.NoError(t, s.Put(ctx, "locked", &Entry{
		Count:        6,
		LastAttempt:  now.Add(-3 * window),
		LockoutUntil: now.Add(time.Hour),
	}))

	require.Equal(t, 3, s.Len())

	s.removeStale(now)

	assert.Equal(t, 2, s.Len())

	stale, err := s.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, stale)

	locked, err := s.Get(ctx, "locked")
	require.NoError(t, err)
	assert.NotNil(t, locked)
}
