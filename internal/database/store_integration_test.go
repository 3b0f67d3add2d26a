package database

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/internal/session"
	"github.com/nfrund/scalemyorg/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurrealUserStore(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewSurrealUserStore(conn)
	email := testutils.UniqueEmail("owner")

	created, err := store.CreateUser(ctx, email, "password123")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, email, created.Email)
	assert.Empty(t, created.PasswordHash)

	_, err = store.CreateUser(ctx, email, "password123")
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	found, err := store.FindUserByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	byID, err := store.FindUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, email, byID.Email)

	verified, err := store.VerifyPassword(ctx, email, "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, verified.ID)

	_, err = store.VerifyPassword(ctx, email, "nope-nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSurrealSessionStore(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewSurrealSessionStore(conn)

	token, err := session.GenerateID()
	require.NoError(t, err)

	sess := session.Session{
		ID:        token,
		UserID:    "user:abc",
		Email:     "a@b.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "user:abc", got.UserID)

	t.Run("expired sessions read as absent", func(t *testing.T) {
		store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { store.now = time.Now }()

		got, err := store.Get(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, token))
		require.NoError(t, store.Delete(ctx, token))
		got, err := store.Get(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	require.NoError(t, store.PurgeExpired(ctx))
}
