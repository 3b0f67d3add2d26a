package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Brand is the logo and product name shown on the left of every nav bar.
func Brand() g.Node {
	return h.A(
		h.Href("/"),
		h.Class("flex items-center gap-2"),
		Icon(IconBarChart, "h-6 w-6 text-primary"),
		h.Span(h.Class("text-xl font-bold"), g.Text("ScaleMyOrg.ai")),
	)
}

// NavBar is the top bar with the brand on the left and actions on the right.
func NavBar(actions ...g.Node) g.Node {
	return h.Nav(
		h.Class("border-b"),
		h.Div(
			h.Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			Brand(),
			h.Div(h.Class("flex items-center gap-4"), g.Group(actions)),
		),
	)
}

// LinkButton is an anchor styled as a button. Variant is "" or "ghost".
func LinkButton(href, label, variant string, extra ...g.Node) g.Node {
	class := "btn"
	if variant == "ghost" {
		class += " btn-ghost"
	}
	return h.A(h.Href(href), h.Class(class), g.Group(extra), g.Text(label))
}
