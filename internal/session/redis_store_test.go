package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/scalemyorg/internal/session"
	"github.com/nfrund/scalemyorg/internal/testutils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	cfg := testutils.RequireRedis(t)
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: cfg.GetRedisAddr(), Password: cfg.GetRedisPassword()})
	t.Cleanup(func() { _ = client.Close() })
	store := session.NewRedisStore(client)
	require.NoError(t, store.Ping(ctx))

	id, err := session.GenerateID()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Delete(context.Background(), id) })

	require.NoError(t, store.Create(ctx, session.Session{
		ID:        id,
		UserID:    "user:1",
		Email:     testutils.UniqueEmail("redis"),
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user:1", got.UserID)

	ttl, err := client.TTL(ctx, "session:"+id).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, store.Delete(ctx, id))
	got, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, store.Create(ctx, session.Session{ID: id, UserID: "user:1", ExpiresAt: time.Now().Add(-time.Second)}))
}
