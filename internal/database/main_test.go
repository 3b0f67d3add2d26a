package database

import (
	"context"
	"testing"

	"github.com/nfrund/scalemyorg/internal/testutils"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
)

// setupTestDB connects to the SurrealDB named by SURREAL_URL and returns the
// connection with a cleanup function. The test is skipped in -short mode or
// when no database is configured.
func setupTestDB(t *testing.T) (*Connection, func()) {
	t.Helper()
	cfg := testutils.RequireSurreal(t)

	ctx := context.Background()
	conn := NewConnection(cfg)
	require.NoError(t, conn.Connect(ctx), "failed to connect to test database")
	require.NoError(t, EnsureSchema(ctx, conn))

	return conn, func() {
		_ = conn.WithConnection(context.Background(), func(db *surrealdb.DB) error {
			_, _ = surrealdb.Query[any](context.Background(), db, "DELETE user; DELETE session;", nil)
			return nil
		})
		_ = conn.Close(context.Background())
	}
}
