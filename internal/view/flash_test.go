package view_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/scalemyorg/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// The session middleware must run so the store is in the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "It worked!")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"It worked!"}, flashes.Success)
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.Empty(t, flashesAfterRead.Success, "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "It failed!")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"It failed!"}, flashes.Error)
		assert.Empty(t, flashes.Success)
	})

	t.Run("Toasts round trip", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetToast(c, view.Toast{Kind: view.ToastSuccess, Title: "Logged out", Description: "You've been successfully logged out."})

		flashes := view.GetFlashData(c)
		require.Len(t, flashes.Toasts, 1)
		assert.Equal(t, "Logged out", flashes.Toasts[0].Title)
		assert.Equal(t, view.ToastSuccess, flashes.Toasts[0].Kind)
	})

	t.Run("Email is remembered once", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashEmail(c, "a@b.com")
		assert.Equal(t, "a@b.com", view.GetFlashData(c).Email)
		assert.Empty(t, view.GetFlashData(c).Email)
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()

		flashes := view.GetFlashData(c)
		assert.True(t, flashes.Empty())
	})
}

func TestRedirect(t *testing.T) {
	e := echo.New()

	t.Run("plain request gets 303", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)

		require.NoError(t, view.Redirect(c, "/"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, view.Redirect(c, "/"))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))
	})

	t.Run("boosted request gets 303", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Boosted", "true")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, view.Redirect(c, "/dashboard"))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestGetFlashData_LogsSaveFailure(t *testing.T) {
	var logs bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(original) })

	c, _ := setupTestContext()

	// A value past the 4096 byte cookie limit makes every save fail.
	sess, err := session.Get("flash-session", c)
	require.NoError(t, err)
	sess.Values["bulk"] = strings.Repeat("x", 5000)

	view.SetFlashSuccess(c, "Saved")
	assert.Equal(t, 1, strings.Count(logs.String(), "event=flash_session_save_failure"))

	data := view.GetFlashData(c)
	assert.Equal(t, []string{"Saved"}, data.Success)
	assert.Equal(t, 2, strings.Count(logs.String(), "event=flash_session_save_failure"),
		"clearing the flashes reports the failed save too")
}
