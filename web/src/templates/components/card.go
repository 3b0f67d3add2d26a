package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Card is a rounded panel with a header and optional body content.
func Card(icon g.Node, title, description string, content ...g.Node) g.Node {
	return h.Div(
		h.Class("card"),
		h.Div(
			h.Class("card-header"),
			icon,
			h.H3(h.Class("card-title"), g.Text(title)),
			h.P(h.Class("card-description"), g.Text(description)),
		),
		g.If(len(content) > 0, h.Div(h.Class("card-content"), g.Group(content))),
	)
}
