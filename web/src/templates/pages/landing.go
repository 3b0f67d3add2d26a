package pages

import (
	"github.com/nfrund/scalemyorg/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type step struct {
	title       string
	description string
}

var howItWorks = []step{
	{"1. Create Your Organization", "CEOs initialize their organization and invite Engine Heads and Metric Owners"},
	{"2. Define Your Metrics", "Set Hero Metrics and assign them across Growth, Fulfillment, and Support functions"},
	{"3. Activate Scorecards", "Engine Heads create departments and add Key Performance Metrics that cascade from CEO goals"},
	{"4. Track Performance", "Monitor progress with role-based dashboards and drill-down visibility"},
}

// Landing is the public marketing page. It takes no input and always renders
// the same markup.
func Landing() g.Node {
	return g.Group{
		components.NavBar(
			components.LinkButton("/login", "Login", "ghost"),
			components.LinkButton("/signup", "Get Started", ""),
		),

		h.Section(
			h.Class("container mx-auto px-4 py-20 text-center"),
			h.H1(h.Class("text-5xl font-bold mb-6"),
				g.Text("Visualize, Structure, and Manage Your Organization's Performance")),
			h.P(h.Class("text-xl text-muted-foreground mb-8 max-w-2xl mx-auto"),
				g.Text("Transform your Growth, Fulfillment, and Support functions into measurable, accountable systems with cascading scorecards.")),
			h.A(h.Href("/signup"), h.Class("btn btn-lg"), g.Text("Start Building Your Scorecard")),
		),

		h.Section(
			h.Class("container mx-auto px-4 py-16"),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-8"),
				components.Card(components.Icon(components.IconTarget, "h-12 w-12 text-primary mb-4"),
					"Hierarchical Scorecards",
					"Align every role from CEO to Metric Owner around shared performance goals"),
				components.Card(components.Icon(components.IconTrendingUp, "h-12 w-12 text-primary mb-4"),
					"Real-Time Visibility",
					"Track metrics across Growth, Fulfillment, and Support functions with live updates"),
				components.Card(components.Icon(components.IconUsers, "h-12 w-12 text-primary mb-4"),
					"Role-Based Access",
					"Empower Engine Heads and Metric Owners with clear ownership and accountability"),
			),
		),

		h.Section(
			h.Class("container mx-auto px-4 py-16"),
			h.H2(h.Class("text-3xl font-bold text-center mb-12"), g.Text("How It Works")),
			h.Div(
				h.Class("max-w-3xl mx-auto space-y-8"),
				g.Map(howItWorks, func(s step) g.Node {
					return components.Card(nil, s.title, s.description)
				}),
			),
		),

		h.Section(
			h.Class("container mx-auto px-4 py-20 text-center"),
			h.H2(h.Class("text-4xl font-bold mb-6"), g.Text("Ready to Scale Your Organization?")),
			h.P(h.Class("text-xl text-muted-foreground mb-8"), g.Text("Start measuring what matters today")),
			h.A(h.Href("/signup"), h.Class("btn btn-lg"), g.Text("Get Started Free")),
		),

		h.Footer(
			h.Class("border-t py-8"),
			h.Div(
				h.Class("container mx-auto px-4 text-center text-muted-foreground"),
				h.P(g.Raw("&copy;"), g.Text(" 2025 ScaleMyOrg.ai. All rights reserved.")),
			),
		),
	}
}
