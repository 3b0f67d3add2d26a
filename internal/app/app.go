// Package app wires the application's services together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/scalemyorg/internal/audit"
	"github.com/nfrund/scalemyorg/internal/auth"
	"github.com/nfrund/scalemyorg/internal/config"
	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/internal/email"
	"github.com/nfrund/scalemyorg/internal/pubsub"
	"github.com/nfrund/scalemyorg/internal/rendering"
	"github.com/nfrund/scalemyorg/internal/server"
	"github.com/nfrund/scalemyorg/internal/storage"
	"github.com/nfrund/scalemyorg/web"
	"github.com/samber/do/v2"
)

// StaticDir is the on-disk asset directory used when APP_STATIC=disk.
const StaticDir = "web/static"

// connectTimeout bounds backend connection at startup.
const connectTimeout = 30 * time.Second

// NewContainer registers every service provider. Nothing is constructed
// until it is first invoked.
func NewContainer(cfg config.Provider) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)

	do.Provide(i, func(i do.Injector) (*Backend, error) {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		return OpenBackend(ctx, do.MustInvoke[config.Provider](i))
	})

	do.Provide(i, func(i do.Injector) (*pubsub.WatermillBridge, error) {
		return pubsub.NewWatermillBridge(slog.Default()), nil
	})

	do.Provide(i, func(i do.Injector) (domain.EmailSender, error) {
		return email.NewEmailService(do.MustInvoke[config.Provider](i))
	})

	do.Provide(i, func(i do.Injector) (*auth.Service, error) {
		cfg := do.MustInvoke[config.Provider](i)
		backend, err := do.Invoke[*Backend](i)
		if err != nil {
			return nil, err
		}
		mailer, err := do.Invoke[domain.EmailSender](i)
		if err != nil {
			return nil, err
		}
		return auth.NewService(auth.Options{
			Users:    backend.Users,
			Sessions: backend.Sessions,
			TTL:      cfg.GetSessionTTL(),
			Mailer:   mailer,
			BaseURL:  cfg.GetAppBaseURL(),
			Bus:      do.MustInvoke[*pubsub.WatermillBridge](i),
		}), nil
	})

	do.Provide(i, func(i do.Injector) (*audit.Subscriber, error) {
		return audit.NewSubscriber(do.MustInvoke[*pubsub.WatermillBridge](i), slog.Default()), nil
	})

	do.Provide(i, func(i do.Injector) (*server.Server, error) {
		cfg := do.MustInvoke[config.Provider](i)
		svc, err := do.Invoke[*auth.Service](i)
		if err != nil {
			return nil, err
		}
		backend, err := do.Invoke[*Backend](i)
		if err != nil {
			return nil, err
		}
		static, err := storage.StaticFS(cfg.GetStaticMode(), web.FS, StaticDir)
		if err != nil {
			return nil, err
		}
		return server.New(server.Dependencies{
			Config:       cfg,
			Auth:         svc,
			Renderer:     rendering.NewUniversalRenderer(),
			Static:       static,
			HealthChecks: backend.Checks,
		})
	})

	return i
}

// Run starts the audit subscriber and serves HTTP until ctx is canceled,
// then releases the bus and the backend.
func Run(ctx context.Context, cfg config.Provider) error {
	i := NewContainer(cfg)

	srv, err := do.Invoke[*server.Server](i)
	if err != nil {
		return fmt.Errorf("app: build server: %w", err)
	}
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	backend := do.MustInvoke[*Backend](i)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
		defer cancel()
		if err := bus.Close(); err != nil {
			slog.Warn("Failed to close pub/sub", "event", "pubsub_close_failure", "error", err)
		}
		if err := backend.Close(ctx); err != nil {
			slog.Warn("Failed to close backend", "event", "backend_close_failure", "error", err)
		}
	}()

	subCtx, cancelSubs := context.WithCancel(ctx)
	defer cancelSubs()
	if err := do.MustInvoke[*audit.Subscriber](i).Start(subCtx); err != nil {
		return err
	}

	return srv.Start(ctx, cfg.GetServerAddr())
}
