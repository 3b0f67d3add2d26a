// Package audit records auth lifecycle events in the structured log.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/scalemyorg/internal/auth"
	"github.com/nfrund/scalemyorg/internal/pubsub"
)

// Subscriber logs every session event published on the bus.
type Subscriber struct {
	sub    pubsub.Subscriber
	logger *slog.Logger
}

// NewSubscriber creates an audit subscriber. A nil logger uses slog.Default().
func NewSubscriber(sub pubsub.Subscriber, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{sub: sub, logger: logger.With("component", "audit")}
}

// Start subscribes to the auth topics. Handling stops when ctx is canceled.
func (s *Subscriber) Start(ctx context.Context) error {
	for _, event := range []pubsub.Event[auth.SessionEvent]{
		auth.SignedUpEvent,
		auth.SignedInEvent,
		auth.SignedOutEvent,
	} {
		event := event
		if err := s.sub.Subscribe(ctx, event.Name(), func(ctx context.Context, msg pubsub.Message) error {
			payload, err := event.Decode(msg)
			if err != nil {
				return err
			}
			s.logger.InfoContext(ctx, "Auth event",
				"event", event.Name(),
				"user_id", payload.UserID,
				"email", payload.Email,
				"at", payload.At)
			return nil
		}); err != nil {
			return fmt.Errorf("audit: subscribe %s: %w", event.Name(), err)
		}
	}
	return nil
}
