package pages

import (
	"github.com/nfrund/scalemyorg/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LoginData pre-fills the login form after a failed attempt.
type LoginData struct {
	Email string
}

// SignupData pre-fills the signup form after a failed attempt.
type SignupData struct {
	Email string
}

// Login renders the sign-in form.
func Login(data LoginData) g.Node {
	return authShell("Welcome back", "Sign in to your ScaleMyOrg.ai account",
		h.Form(
			h.Method("post"),
			h.Action("/login"),
			h.Class("space-y-4"),
			emailField(data.Email),
			passwordField("password", "Password", "current-password"),
			h.Button(h.Type("submit"), h.Class("btn"), g.Text("Login")),
		),
		h.P(h.Class("text-sm text-muted-foreground"),
			g.Text("Don't have an account? "),
			h.A(h.Href("/signup"), h.Class("text-primary"), g.Text("Sign up")),
		),
	)
}

// Signup renders the registration form.
func Signup(data SignupData) g.Node {
	return authShell("Create your account", "Start measuring what matters today",
		h.Form(
			h.Method("post"),
			h.Action("/signup"),
			h.Class("space-y-4"),
			emailField(data.Email),
			passwordField("password", "Password", "new-password"),
			passwordField("password_confirm", "Confirm password", "new-password"),
			h.Button(h.Type("submit"), h.Class("btn"), g.Text("Get Started")),
		),
		h.P(h.Class("text-sm text-muted-foreground"),
			g.Text("Already have an account? "),
			h.A(h.Href("/login"), h.Class("text-primary"), g.Text("Login")),
		),
	)
}

func authShell(title, subtitle string, body ...g.Node) g.Node {
	return g.Group{
		components.NavBar(),
		h.Main(
			h.Class("container mx-auto px-4 py-16"),
			h.Div(
				h.Class("card max-w-md mx-auto"),
				h.Div(
					h.Class("card-header space-y-4"),
					h.H1(h.Class("card-title"), g.Text(title)),
					h.P(h.Class("card-description"), g.Text(subtitle)),
					g.Group(body),
				),
			),
		),
	}
}

func emailField(value string) g.Node {
	return h.Div(
		h.Class("form-field"),
		h.Label(h.For("email"), g.Text("Email")),
		h.Input(h.Type("email"), h.ID("email"), h.Name("email"), h.Value(value),
			h.Required(), h.AutoComplete("email")),
	)
}

func passwordField(name, label, autocomplete string) g.Node {
	return h.Div(
		h.Class("form-field"),
		h.Label(h.For(name), g.Text(label)),
		h.Input(h.Type("password"), h.ID(name), h.Name(name),
			h.Required(), g.Attr("minlength", "8"), h.AutoComplete(autocomplete)),
	)
}
