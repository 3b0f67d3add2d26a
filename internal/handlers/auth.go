package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/internal/middleware"
	"github.com/nfrund/scalemyorg/internal/session"
	"github.com/nfrund/scalemyorg/internal/view"
	"github.com/nfrund/scalemyorg/web/src/templates/layouts"
	"github.com/nfrund/scalemyorg/web/src/templates/pages"
)

// Toast shown on the landing page after signing out.
var loggedOutToast = view.Toast{
	Kind:        view.ToastSuccess,
	Title:       "Logged out",
	Description: "You've been successfully logged out.",
}

// AuthHandler handles the login, signup and logout routes.
type AuthHandler struct {
	auth domain.Authenticator
	ttl  time.Duration
}

// NewAuthHandler creates a new AuthHandler. ttl is the cookie lifetime and
// should match the session lifetime.
func NewAuthHandler(auth domain.Authenticator, ttl time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, ttl: ttl}
}

// LoginGet renders the login page.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	flash := view.GetFlashData(c)
	return c.Render(http.StatusOK, "", layouts.Base("Login", flash, pages.Login(pages.LoginData{Email: flash.Email})))
}

// LoginPost signs the user in and sends them to the dashboard.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	req.Email = domain.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, validationMessage(err))
		view.SetFlashEmail(c, req.Email)
		return view.Redirect(c, "/login")
	}

	token, err := h.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			logger.WarnContext(ctx, "Failed login attempt", "event", "login_failure", "email", req.Email)
			view.SetFlashError(c, "Invalid email or password.")
		} else {
			logger.ErrorContext(ctx, "Login failed", "event", "login_error", "error", err)
			view.SetFlashError(c, "Something went wrong. Please try again.")
		}
		view.SetFlashEmail(c, req.Email)
		return view.Redirect(c, "/login")
	}

	session.SetCookie(c, token, time.Now().Add(h.ttl))
	return view.Redirect(c, "/dashboard")
}

// SignupGet renders the signup page.
func (h *AuthHandler) SignupGet(c echo.Context) error {
	flash := view.GetFlashData(c)
	return c.Render(http.StatusOK, "", layouts.Base("Sign up", flash, pages.Signup(pages.SignupData{Email: flash.Email})))
}

// SignupPost registers a new account and signs it in.
func (h *AuthHandler) SignupPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	req.Email = domain.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, validationMessage(err))
		view.SetFlashEmail(c, req.Email)
		return view.Redirect(c, "/signup")
	}

	token, err := h.auth.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			view.SetFlashError(c, "A user with this email already exists.")
		} else {
			logger.ErrorContext(ctx, "Signup failed", "event", "signup_error", "error", err)
			view.SetFlashError(c, "Could not create your account.")
		}
		view.SetFlashEmail(c, req.Email)
		return view.Redirect(c, "/signup")
	}

	session.SetCookie(c, token, time.Now().Add(h.ttl))
	view.SetToast(c, view.Toast{
		Kind:        view.ToastSuccess,
		Title:       "Account created",
		Description: "Welcome to ScaleMyOrg.ai!",
	})
	return view.Redirect(c, "/dashboard")
}

// Logout ends the session and returns to the landing page. The outcome of
// SignOut never changes where the user ends up; a failure is only logged.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.auth.SignOut(ctx, session.TokenFromRequest(c)); err != nil {
		middleware.FromContext(ctx).WarnContext(ctx, "Sign-out failed, clearing the cookie anyway",
			"event", "sign_out_failure", "error", err)
	}

	session.ClearCookie(c)
	view.SetToast(c, loggedOutToast)
	return view.Redirect(c, "/")
}
