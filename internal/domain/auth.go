package domain

import "context"

// SessionProvider is the auth collaborator boundary. Views only read the
// current session or ask for it to be ended; they never mutate it directly.
type SessionProvider interface {
	// CurrentUser returns the identity bound to token, or nil when there is
	// no authenticated session.
	CurrentUser(ctx context.Context, token string) (*UserIdentity, error)
	// SignOut invalidates the session bound to token.
	SignOut(ctx context.Context, token string) error
}

// Authenticator extends SessionProvider with the credential flows used by
// the login and signup pages.
type Authenticator interface {
	SessionProvider
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password string) (string, error)
}

// UserRepository defines the contract for user data storage operations.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type UserRepository interface {
	CreateUser(ctx context.Context, email, password string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	FindUserByID(ctx context.Context, id string) (*User, error)
	// VerifyPassword returns the user when the password matches, and
	// ErrInvalidCredentials otherwise.
	VerifyPassword(ctx context.Context, email, password string) (*User, error)
}

// EmailSender delivers transactional mail such as the signup welcome.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}
