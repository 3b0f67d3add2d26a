package email

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/scalemyorg/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailService(t *testing.T) {
	t.Run("log provider", func(t *testing.T) {
		sender, err := NewEmailService(&config.Config{EmailProvider: "log"})
		require.NoError(t, err)
		assert.IsType(t, &LogSender{}, sender)
		assert.NoError(t, sender.Send("a@b.com", "hi", "<p>hi</p>"))
	})

	t.Run("resend without key", func(t *testing.T) {
		_, err := NewEmailService(&config.Config{EmailProvider: "resend"})
		assert.ErrorContains(t, err, "EMAIL_API_KEY")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEmailService(&config.Config{EmailProvider: "pigeon"})
		assert.ErrorContains(t, err, "unknown email provider")
	})
}

func TestResendSender_Send(t *testing.T) {
	var got resendPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := &ResendSender{apiKey: "key-123", endpoint: srv.URL, client: &http.Client{Timeout: time.Second}}
	require.NoError(t, sender.Send("a@b.com", WelcomeSubject, "<p>hello</p>"))

	assert.Equal(t, "a@b.com", got.To)
	assert.Equal(t, WelcomeSubject, got.Subject)
	assert.Contains(t, got.From, "ScaleMyOrg.ai")
}

func TestResendSender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	sender := &ResendSender{apiKey: "k", endpoint: srv.URL, client: srv.Client()}
	assert.ErrorContains(t, sender.Send("a@b.com", "s", "b"), "status 422")
}

func TestWelcomeBody(t *testing.T) {
	body := WelcomeBody("http://localhost:8080/", "<a@b.com>")
	assert.Contains(t, body, `href="http://localhost:8080/dashboard"`)
	assert.Contains(t, body, "&lt;a@b.com&gt;")
}
