package auth

import (
	"time"

	"github.com/nfrund/scalemyorg/internal/pubsub"
)

// SessionEvent is the payload of every auth lifecycle event. It never carries
// the session token.
type SessionEvent struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

var (
	SignedInEvent  = pubsub.NewEvent[SessionEvent]("auth.session.signed_in", "A user signed in and a session was created")
	SignedOutEvent = pubsub.NewEvent[SessionEvent]("auth.session.signed_out", "A session was ended by the user")
	SignedUpEvent  = pubsub.NewEvent[SessionEvent]("auth.user.signed_up", "A new account was registered")
)
