package pages

import (
	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

var quickStart = []string{
	"1. Create your organization",
	"2. Invite your team members",
	"3. Define your metrics",
	"4. Activate scorecards",
}

// Dashboard is the signed-in home. The user's email is shown in the nav bar
// next to the logout button.
func Dashboard(user domain.UserIdentity) g.Node {
	return g.Group{
		components.NavBar(
			h.Span(h.Class("text-sm text-muted-foreground"), h.ID("session-email"), g.Text(user.Email)),
			LogoutButton(),
		),

		h.Main(
			h.Class("container mx-auto px-4 py-8"),
			h.Div(
				h.Class("mb-8"),
				h.H1(h.Class("text-3xl font-bold mb-2"), g.Text("Welcome to Your Dashboard")),
				h.P(h.Class("text-muted-foreground"), g.Text("Let's get started by creating your organization")),
			),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-6"),
				components.Card(nil, "Create Organization", "Set up your organization to start building scorecards",
					h.Button(
						h.Type("button"),
						h.Class("btn rounded-xl"),
						components.Icon(components.IconPlus, "h-4 w-4 mr-2"),
						g.Text("Create Organization"),
					),
				),
				components.Card(nil, "Quick Start Guide", "Learn how to make the most of ScaleMyOrg.ai",
					h.Ul(
						h.Class("space-y-2 text-sm text-muted-foreground"),
						g.Map(quickStart, func(item string) g.Node { return h.Li(g.Text(item)) }),
					),
				),
			),
		),
	}
}

// LogoutButton posts to /logout. Without JavaScript the surrounding form
// submits normally.
func LogoutButton() g.Node {
	return h.Form(
		h.Method("post"),
		h.Action("/logout"),
		h.Button(
			h.Type("submit"),
			h.Class("btn btn-ghost btn-sm"),
			hx.Post("/logout"),
			components.Icon(components.IconLogOut, "h-4 w-4 mr-2"),
			g.Text("Logout"),
		),
	)
}
