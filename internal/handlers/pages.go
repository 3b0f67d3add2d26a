package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/scalemyorg/internal/middleware"
	"github.com/nfrund/scalemyorg/internal/view"
	"github.com/nfrund/scalemyorg/web/src/templates/layouts"
	"github.com/nfrund/scalemyorg/web/src/templates/pages"
)

// LandingGet renders the public landing page, with any toast left by a
// redirect (e.g. after logout).
func LandingGet(c echo.Context) error {
	flash := view.GetFlashData(c)
	return c.Render(http.StatusOK, "", layouts.Base("", flash, pages.Landing()))
}

// DashboardGet renders the signed-in dashboard. It must be mounted behind
// middleware.Auth, which puts the identity in the context.
func DashboardGet(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return view.Redirect(c, middleware.LoginPath)
	}

	flash := view.GetFlashData(c)
	return c.Render(http.StatusOK, "", layouts.Base("Dashboard", flash, pages.Dashboard(*user)))
}
