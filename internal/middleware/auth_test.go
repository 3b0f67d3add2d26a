package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	user    *domain.UserIdentity
	err     error
	lookups atomic.Int32
	onCall  func()
}

func (p *stubProvider) CurrentUser(context.Context, string) (*domain.UserIdentity, error) {
	p.lookups.Add(1)
	if p.onCall != nil {
		p.onCall()
	}
	return p.user, p.err
}

func (p *stubProvider) SignOut(context.Context, string) error { return nil }

func newGatedEcho(provider domain.SessionProvider) (*echo.Echo, *atomic.Int32) {
	var handled atomic.Int32
	e := echo.New()
	e.GET("/dashboard", func(c echo.Context) error {
		handled.Add(1)
		return c.String(http.StatusOK, "dashboard for "+UserFromContext(c).Email)
	}, Auth(provider))
	return e, &handled
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("no session redirects to login", func(t *testing.T) {
		provider := &stubProvider{}
		e, handled := newGatedEcho(provider)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, rec.Body.String())
		assert.Zero(t, handled.Load())
		assert.EqualValues(t, 1, provider.lookups.Load())
	})

	t.Run("stale cookie is cleared", func(t *testing.T) {
		e, _ := newGatedEcho(&stubProvider{})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "stale"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		cleared := findCookie(rec, session.CookieName)
		require.NotNil(t, cleared)
		assert.Equal(t, -1, cleared.MaxAge)
	})

	t.Run("lookup failure redirects", func(t *testing.T) {
		e, handled := newGatedEcho(&stubProvider{err: errors.New("backend down")})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		assert.Zero(t, handled.Load())
	})

	t.Run("htmx request gets HX-Redirect", func(t *testing.T) {
		e, _ := newGatedEcho(&stubProvider{})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "/login", rec.Header().Get("HX-Redirect"))
	})

	t.Run("session passes the identity through", func(t *testing.T) {
		e, handled := newGatedEcho(&stubProvider{user: &domain.UserIdentity{ID: "user:1", Email: "a@b.com"}})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dashboard for a@b.com", rec.Body.String())
		assert.EqualValues(t, 1, handled.Load())
	})

	t.Run("client gone during lookup writes nothing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		provider := &stubProvider{
			user:   &domain.UserIdentity{Email: "a@b.com"},
			onCall: cancel,
		}
		e, handled := newGatedEcho(provider)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Zero(t, handled.Load())
		assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
		assert.Empty(t, rec.Body.String())
	})
}

func TestUserFromContext_Ungated(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, UserFromContext(c))
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
