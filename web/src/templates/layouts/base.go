package layouts

import (
	"github.com/nfrund/scalemyorg/internal/view"
	"github.com/nfrund/scalemyorg/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// HTMXScript is the pinned htmx build loaded by every page.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// Base is the document shell shared by all pages. Links and forms are
// boosted by htmx; pending toasts render after the page body.
func Base(title string, flash view.FlashData, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
				h.Script(h.Src(HTMXScript), h.Defer()),
			),
			h.Body(
				hx.Boost("true"),
				h.Div(h.Class("min-h-screen"), g.Group(body)),
				components.Toasts(flash),
			),
		),
	)
}
