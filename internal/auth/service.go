// Package auth is the session collaborator the pages talk to: it resolves
// the current user from a session token and runs the sign-in, sign-up and
// sign-out flows.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/scalemyorg/internal/domain"
	"github.com/nfrund/scalemyorg/internal/email"
	"github.com/nfrund/scalemyorg/internal/pubsub"
	"github.com/nfrund/scalemyorg/internal/session"
)

// Service implements domain.Authenticator on a user repository and a
// session store.
type Service struct {
	users    domain.UserRepository
	sessions session.Store
	ttl      time.Duration
	mailer   domain.EmailSender
	baseURL  string
	bus      pubsub.Publisher
	now      func() time.Time
}

// Options configures a Service. Mailer and Bus are optional.
type Options struct {
	Users    domain.UserRepository
	Sessions session.Store
	TTL      time.Duration
	Mailer   domain.EmailSender
	BaseURL  string
	Bus      pubsub.Publisher
}

// NewService creates the auth service.
func NewService(opts Options) *Service {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		users:    opts.Users,
		sessions: opts.Sessions,
		ttl:      ttl,
		mailer:   opts.Mailer,
		baseURL:  opts.BaseURL,
		bus:      opts.Bus,
		now:      time.Now,
	}
}

// TTL returns the lifetime given to new sessions.
func (s *Service) TTL() time.Duration { return s.ttl }

// CurrentUser returns the identity bound to token, or (nil, nil) when the
// token is empty, unknown or expired. A stored session without an email is
// treated as absent.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.UserIdentity, error) {
	if token == "" {
		return nil, nil
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("auth: load session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}
	if sess.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			slog.WarnContext(ctx, "Failed to delete expired session", "event", "session_delete_failure", "error", err)
		}
		return nil, nil
	}

	identity, err := domain.NewUserIdentity(sess.UserID, sess.Email)
	if errors.Is(err, domain.ErrInvalidIdentity) {
		slog.WarnContext(ctx, "Session carries no email, treating as signed out",
			"event", "session_invalid_identity", "user_id", sess.UserID)
		return nil, nil
	}
	return identity, err
}

// SignOut ends the session bound to token. An empty or unknown token is a
// no-op, so calling it twice is safe.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return fmt.Errorf("auth: load session: %w", err)
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("auth: delete session: %w", err)
	}
	if sess != nil {
		s.publish(ctx, SignedOutEvent, sess.UserID, sess.Email)
	}
	return nil
}

// SignIn verifies the credentials and opens a session, returning its token.
func (s *Service) SignIn(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := s.users.VerifyPassword(ctx, emailAddr, password)
	if err != nil {
		return "", err
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return "", err
	}
	s.publish(ctx, SignedInEvent, user.ID, user.Email)
	return token, nil
}

// SignUp registers a new account, sends the welcome email and opens a
// session. A failed email does not fail the signup.
func (s *Service) SignUp(ctx context.Context, emailAddr, password string) (string, error) {
	user, err := s.users.CreateUser(ctx, emailAddr, password)
	if err != nil {
		return "", err
	}
	s.publish(ctx, SignedUpEvent, user.ID, user.Email)

	if s.mailer != nil {
		if err := s.mailer.Send(user.Email, email.WelcomeSubject, email.WelcomeBody(s.baseURL, user.Email)); err != nil {
			slog.WarnContext(ctx, "Failed to send welcome email", "event", "welcome_email_failure", "user_id", user.ID, "error", err)
		}
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return "", err
	}
	s.publish(ctx, SignedInEvent, user.ID, user.Email)
	return token, nil
}

func (s *Service) openSession(ctx context.Context, user *domain.User) (string, error) {
	token, err := session.GenerateID()
	if err != nil {
		return "", err
	}

	if err := s.sessions.Create(ctx, session.Session{
		ID:        token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: s.now().Add(s.ttl),
	}); err != nil {
		return "", fmt.Errorf("auth: create session: %w", err)
	}
	return token, nil
}

func (s *Service) publish(ctx context.Context, event pubsub.Event[SessionEvent], userID, emailAddr string) {
	if s.bus == nil {
		return
	}
	payload := SessionEvent{UserID: userID, Email: emailAddr, At: s.now().UTC()}
	if err := pubsub.Publish(ctx, s.bus, event, userID, payload); err != nil {
		slog.WarnContext(ctx, "Failed to publish auth event", "event", "auth_event_publish_failure",
			"topic", event.Name(), "error", err)
	}
}

var _ domain.Authenticator = (*Service)(nil)
