package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/nfrund/scalemyorg/internal/domain"
)

// State is the position of a Gate in its lifecycle.
type State int

const (
	// StateLoading is the initial state while the session lookup is pending.
	StateLoading State = iota
	// StateRedirecting means no usable session was found; the page must
	// send the visitor to the login route and render nothing.
	StateRedirecting
	// StateReady means the identity was captured and the page may render.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRedirecting:
		return "redirecting"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrDetached is returned when the request went away while the lookup was in
// flight. The result is discarded and the gate stays in StateLoading.
var ErrDetached = errors.New("session gate: request ended before the session lookup completed")

// Gate decides, once per request, whether a protected page renders or
// redirects. Redirecting and Ready are terminal; a new request gets a new Gate.
type Gate struct {
	provider domain.SessionProvider
	state    State
	user     *domain.UserIdentity
}

// NewGate returns a gate in StateLoading.
func NewGate(provider domain.SessionProvider) *Gate {
	return &Gate{provider: provider}
}

// Check asks the provider for the session bound to token and moves the gate
// out of StateLoading.
//
// A lookup error is treated like an absent session: the gate moves to
// StateRedirecting and the error is returned for the caller to log. Calling
// Check on a gate that already left StateLoading returns the terminal state
// without another lookup.
func (g *Gate) Check(ctx context.Context, token string) (State, error) {
	if g.state != StateLoading {
		return g.state, nil
	}

	user, err := g.provider.CurrentUser(ctx, token)

	// The request may have been torn down while we waited. Nothing may be
	// committed after that point.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return g.state, fmt.Errorf("%w: %v", ErrDetached, ctxErr)
	}

	if err != nil {
		g.state = StateRedirecting
		return g.state, fmt.Errorf("session lookup failed: %w", err)
	}
	if user == nil || user.Email == "" {
		g.state = StateRedirecting
		return g.state, nil
	}

	g.user = user
	g.state = StateReady
	return g.state, nil
}

// State returns the current state.
func (g *Gate) State() State { return g.state }

// User returns the captured identity; nil unless the gate is Ready.
func (g *Gate) User() *domain.UserIdentity { return g.user }
