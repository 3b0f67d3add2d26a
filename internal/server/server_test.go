package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefaultLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(original) })
	return &buf
}

func TestErrorHandler_UnhandledErrorLogsStack(t *testing.T) {
	logs := captureDefaultLog(t)
	e := echo.New()
	setupErrorHandling(e)
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("session store exploded")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "exploded")

	out := logs.String()
	assert.Contains(t, out, "Internal Server Error (Unhandled)")
	assert.Contains(t, out, `error="session store exploded"`)
	assert.Contains(t, out, "path=/boom")
	assert.Contains(t, out, "stack_trace=")
	assert.Contains(t, out, "internal/server/errors.go")
}

func TestErrorHandler_HTTPErrorsPassThrough(t *testing.T) {
	logs := captureDefaultLog(t)
	e := echo.New()
	setupErrorHandling(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, logs.String(), "Unhandled")
}

func TestErrorHandler_HeadHasNoBody(t *testing.T) {
	captureDefaultLog(t)
	e := echo.New()
	setupErrorHandling(e)
	e.HEAD("/boom", func(c echo.Context) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
}
