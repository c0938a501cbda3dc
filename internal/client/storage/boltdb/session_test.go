package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/linkkeeper/internal/client/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestSessionStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	session := &storage.Session{
		Username:    "testuser",
		AccessToken: "token123",
		SavedAt:     time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Username, got.Username)
	assert.Equal(t, session.AccessToken, got.AccessToken)
	assert.True(t, session.SavedAt.Equal(got.SavedAt))
}

func TestSessionStorage_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.SaveSession(ctx, &storage.Session{Username: "first", AccessToken: "t1"}))
	require.NoError(t, s.SaveSession(ctx, &storage.Session{Username: "second", AccessToken: "t2"}))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Username)
	assert.Equal(t, "t2", got.AccessToken)
}

func TestSessionStorage_GetMissing(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSessionStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.SaveSession(ctx, &storage.Session{Username: "testuser", AccessToken: "t1"}))
	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление не является ошибкой
	assert.NoError(t, s.DeleteSession(ctx))
}
