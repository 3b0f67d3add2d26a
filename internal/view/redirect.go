package view

import (
	"net/http"

	"github.com/labstack/echo/v4"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// Redirect sends the client to url. Plain htmx requests cannot follow a 303
// into a full page, so they get an HX-Redirect header instead; boosted
// navigations and regular requests get a 303.
func Redirect(c echo.Context, url string) error {
	h := c.Request().Header
	if hxhttp.IsRequest(h) && !hxhttp.IsBoosted(h) {
		hxhttp.SetRedirect(c.Response().Header(), url)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, url)
}
