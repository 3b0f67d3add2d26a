// Package server assembles the echo instance: middleware, routes and the
// HTTP lifecycle.
package server

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/scalemyorg/internal/config"
	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/internal/handlers"
	appmiddleware "github.com/nfrund/scalemyorg/internal/middleware"
)

// Dependencies are the services the HTTP layer needs.
type Dependencies struct {
	Config   config.Provider
	Auth     domain.Authenticator
	Renderer echo.Renderer
	// Static is served under /static. Optional.
	Static fs.FS
	// HealthChecks are reported by /health. Optional.
	HealthChecks map[string]handlers.HealthCheck
	// Echo lets tests supply their own instance. Optional.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	auth          domain.Authenticator
	static        fs.FS
	authHandler   *handlers.AuthHandler
	healthHandler *handlers.HealthHandler
}

// New creates a Server with middleware installed and routes registered.
func New(deps Dependencies) (*Server, error) {
	if deps.Config == nil || deps.Auth == nil || deps.Renderer == nil {
		return nil, errors.New("server: config, auth and renderer are required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())

	// Flash messages live in their own signed cookie.
	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	s := &Server{
		E:             e,
		Cfg:           deps.Config,
		auth:          deps.Auth,
		static:        deps.Static,
		authHandler:   handlers.NewAuthHandler(deps.Auth, deps.Config.GetSessionTTL()),
		healthHandler: handlers.NewHealthHandler(deps.HealthChecks),
	}
	s.RegisterRoutes()
	return s, nil
}
