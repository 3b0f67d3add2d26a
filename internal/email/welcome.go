package email

import (
	"fmt"
	"html"
	"strings"
)

// WelcomeSubject is the subject line of the post-signup email.
const WelcomeSubject = "Welcome to ScaleMyOrg.ai"

// WelcomeBody renders the HTML body sent after a successful signup.
func WelcomeBody(baseURL, email string) string {
	dashboard := strings.TrimRight(baseURL, "/") + "/dashboard"
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>Your account is ready. Start by creating your organization:</p><p><a href="%s">Open your dashboard</a></p>`,
		html.EscapeString(email), html.EscapeString(dashboard),
	)
}
