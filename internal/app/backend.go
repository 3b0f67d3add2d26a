package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/scalemyorg/internal/config"
	"github.com/nfrund/scalemyorg/internal/database"
	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/internal/handlers"
	"github.com/nfrund/scalemyorg/internal/session"
	"github.com/redis/go-redis/v9"
)

// purgeInterval is how often expired SurrealDB sessions are removed.
const purgeInterval = 10 * time.Minute

// Backend is the storage selected by SESSION_BACKEND.
type Backend struct {
	Users    domain.UserRepository
	Sessions session.Store
	Checks   map[string]handlers.HealthCheck

	closers []func(context.Context) error
}

// Close releases every connection the backend opened.
func (b *Backend) Close(ctx context.Context) error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i](ctx))
	}
	return errors.Join(errs...)
}

// OpenBackend connects the user and session stores. The context bounds the
// initial connection attempts only.
func OpenBackend(ctx context.Context, cfg config.Provider) (*Backend, error) {
	b := &Backend{Checks: map[string]handlers.HealthCheck{}}

	switch cfg.GetSessionBackend() {
	case config.SessionBackendMemory:
		b.Users = database.NewMemoryUserStore()
		b.Sessions = session.NewMemoryStore()
		slog.Warn("Using in-memory user and session stores; data is lost on restart", "event", "backend_memory")

	case config.SessionBackendSurreal:
		conn, err := connectSurreal(ctx, cfg, b)
		if err != nil {
			return nil, err
		}
		b.Users = database.NewSurrealUserStore(conn)
		sessions := database.NewSurrealSessionStore(conn)
		b.Sessions = sessions
		b.startPurge(sessions)

	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.GetRedisPassword(),
		})
		store := session.NewRedisStore(client)
		if err := store.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("app: redis at %s: %w", cfg.GetRedisAddr(), err)
		}
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
		b.Sessions = store
		b.Checks["redis"] = store.Ping

		// Accounts still need a durable home; SurrealDB is used when configured.
		if cfg.GetDBURL() != "" {
			conn, err := connectSurreal(ctx, cfg, b)
			if err != nil {
				_ = b.Close(ctx)
				return nil, err
			}
			b.Users = database.NewSurrealUserStore(conn)
		} else {
			slog.Warn("SURREAL_URL not set, keeping accounts in memory", "event", "backend_memory_users")
			b.Users = database.NewMemoryUserStore()
		}

	default:
		return nil, fmt.Errorf("app: unknown session backend %q", cfg.GetSessionBackend())
	}

	return b, nil
}

func connectSurreal(ctx context.Context, cfg config.Provider, b *Backend) (*database.Connection, error) {
	conn := database.NewConnection(cfg)
	if err := conn.Connect(ctx); err != nil {
		return nil, fmt.Errorf("app: connect surrealdb: %w", err)
	}
	if err := database.EnsureSchema(ctx, conn); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("app: surrealdb schema: %w", err)
	}
	conn.StartMonitoring()

	b.closers = append(b.closers, conn.Close)
	b.Checks["database"] = conn.Ping
	return conn, nil
}

func (b *Backend) startPurge(store *database.SurrealSessionStore) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := store.PurgeExpired(ctx); err != nil {
					slog.Warn("Failed to purge expired sessions", "event", "session_purge_failure", "error", err)
				}
			}
		}
	}()

	// Registered after the connection, so it stops before the connection closes.
	b.closers = append(b.closers, func(context.Context) error {
		cancel()
		<-done
		return nil
	})
}
