package view

import (
	"encoding/json"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyToast    = "toast"
	flashKeyEmail    = "email"
)

// Toast kinds.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is a transient notification shown once on the next rendered page.
type Toast struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FlashData is everything pending in the flash session for one render.
type FlashData struct {
	Success []string
	Error   []string
	Toasts  []Toast
	// Email is the address submitted on a failed login or signup.
	Email string
}

// Empty reports whether nothing needs to be shown.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0 && len(f.Toasts) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		slog.WarnContext(c.Request().Context(), "Flash session unreadable, starting a new one", "event", "flash_session_decode_failure", "error", err)
	}
	if sess == nil {
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to save flash session", "event", "flash_session_save_failure", "error", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFlashEmail remembers a submitted email so the form can be pre-filled.
func SetFlashEmail(c echo.Context, email string) {
	setFlash(c, flashKeyEmail, email)
}

// SetToast queues a toast notification for the next page.
func SetToast(c echo.Context, t Toast) {
	data, err := json.Marshal(t)
	if err != nil {
		return
	}
	setFlash(c, flashKeyToast, string(data))
}

// GetFlashData retrieves and clears flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil || sess == nil {
		return data
	}

	// Flashes() returns and clears the values for a key.
	data.Success = flashStrings(sess.Flashes(flashKeySuccess))
	data.Error = flashStrings(sess.Flashes(flashKeyError))
	for _, raw := range flashStrings(sess.Flashes(flashKeyToast)) {
		var t Toast
		if err := json.Unmarshal([]byte(raw), &t); err == nil {
			data.Toasts = append(data.Toasts, t)
		}
	}
	if emails := flashStrings(sess.Flashes(flashKeyEmail)); len(emails) > 0 {
		data.Email = emails[len(emails)-1]
	}

	if !data.Empty() || data.Email != "" {
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			slog.ErrorContext(c.Request().Context(), "Failed to save flash session", "event", "flash_session_save_failure", "error", err)
		}
	}
	return data
}

func flashStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
