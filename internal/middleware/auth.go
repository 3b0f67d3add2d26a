package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/internal/session"
	"github.com/nfrund/scalemyorg/internal/view"
)

// UserContextKey is the echo context key holding the *domain.UserIdentity of
// a gated request.
const UserContextKey = "user"

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

// Auth creates a middleware that runs the session gate in front of protected
// routes. Without a usable session the visitor is redirected to LoginPath and
// the handler never runs.
func Auth(provider domain.SessionProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			logger := FromContext(ctx)
			token := session.TokenFromRequest(c)

			gate := session.NewGate(provider)
			state, err := gate.Check(ctx, token)
			if errors.Is(err, session.ErrDetached) {
				// The client is gone; there is nobody to write to.
				logger.DebugContext(ctx, "Session gate detached", "event", "session_gate_detached", "path", c.Path())
				return nil
			}
			if err != nil {
				logger.WarnContext(ctx, "Session lookup failed, treating as signed out",
					"event", "session_lookup_failure", "path", c.Path(), "error", err)
			}

			if state != session.StateReady {
				if token != "" {
					session.ClearCookie(c)
				}
				logger.DebugContext(ctx, "No session, redirecting to login",
					"event", "session_gate_redirect", "path", c.Path())
				return view.Redirect(c, LoginPath)
			}

			c.Set(UserContextKey, gate.User())
			return next(c)
		}
	}
}

// UserFromContext returns the identity captured by Auth, or nil on routes
// that are not gated.
func UserFromContext(c echo.Context) *domain.UserIdentity {
	user, _ := c.Get(UserContextKey).(*domain.UserIdentity)
	return user
}
