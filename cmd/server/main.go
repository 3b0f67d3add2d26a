package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/scalemyorg/internal/app"
	"github.com/nfrund/scalemyorg/internal/config"
	"github.com/nfrund/scalemyorg/internal/logging"
	"github.com/nfrund/scalemyorg/internal/server"
)

// AppStatic can be set at build time to force a static asset strategy.
// Example: go build -ldflags "-X 'main.AppStatic=disk'"
var AppStatic string

func main() {
	if AppStatic != "" {
		os.Setenv("APP_STATIC", AppStatic)
	}

	cfg := config.New()
	logging.New()

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "event", "config_invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := server.SignalContext(context.Background())
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		slog.Error("Server exited with error", "event", "server_exit", "error", err)
		os.Exit(1)
	}
}
