package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, Session{ID: "s1", UserID: "u1", Email: "a@b.com", ExpiresAt: now.Add(time.Hour)}))

		got, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "a@b.com", got.Email)
	})

	t.Run("missing session is nil without error", func(t *testing.T) {
		got, err := store.Get(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("rejects incomplete or already expired sessions", func(t *testing.T) {
		assert.Error(t, store.Create(ctx, Session{ID: "s2", ExpiresAt: now.Add(time.Hour)}))
		assert.Error(t, store.Create(ctx, Session{ID: "s3", UserID: "u1", ExpiresAt: now}))
	})

	t.Run("expired sessions are dropped on read", func(t *testing.T) {
		require.NoError(t, store.Create(ctx, Session{ID: "s4", UserID: "u1", ExpiresAt: now.Add(time.Minute)}))
		now = now.Add(2 * time.Minute)

		got, err := store.Get(ctx, "s4")
		require.NoError(t, err)
		assert.Nil(t, got)
		_, ok := store.sessions["s4"]
		assert.False(t, ok)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "s1"))
		assert.NoError(t, store.Delete(ctx, "s1"))
		got, _ := store.Get(ctx, "s1")
		assert.Nil(t, got)
	})
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, a, 43) // 32 bytes, unpadded base64url
	assert.NotEqual(t, a, b)
}
