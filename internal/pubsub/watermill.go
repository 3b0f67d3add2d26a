package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Metadata keys carrying Message fields through a watermill message.
const (
	metaUserID = "user_id"
	metaTopic  = "topic"
)

// WatermillBridge implements Bus on an in-memory watermill GoChannel.
type WatermillBridge struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger

	// loops tracks running subscription goroutines so Close can wait for them.
	loops sync.WaitGroup
}

// NewWatermillBridge creates the bus. Watermill's own logs go through logger;
// a nil logger falls back to slog.Default().
func NewWatermillBridge(logger *slog.Logger) *WatermillBridge {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "pubsub")

	return &WatermillBridge{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			newSlogAdapter(logger),
		),
		logger: logger,
	}
}

func toWatermill(msg Message) *message.Message {
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wm.Metadata.Set(k, v)
	}
	wm.Metadata.Set(metaUserID, msg.UserID)
	wm.Metadata.Set(metaTopic, msg.Topic)
	return wm
}

func fromWatermill(wm *message.Message) Message {
	msg := Message{
		Topic:    wm.Metadata.Get(metaTopic),
		UserID:   wm.Metadata.Get(metaUserID),
		Payload:  wm.Payload,
		Metadata: make(map[string]string, len(wm.Metadata)),
	}
	for k, v := range wm.Metadata {
		if k != metaUserID && k != metaTopic {
			msg.Metadata[k] = v
		}
	}
	return msg
}

// Publish implements Publisher.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wm := toWatermill(msg)
	wm.SetContext(ctx)
	return wb.channel.Publish(msg.Topic, wm)
}

// Subscribe implements Subscriber. It returns once the subscription is
// active; messages are handled on a background goroutine.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.channel.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("pubsub: subscribe %s: %w", topic, err)
	}

	wb.loops.Add(1)
	go func() {
		defer wb.loops.Done()
		for wm := range messages {
			wb.dispatch(ctx, topic, handler, wm)
		}
		wb.logger.Debug("Subscription ended", "topic", topic)
	}()
	return nil
}

// dispatch runs handler for one message. GoChannel redelivers nacked messages
// forever, so failures and panics are logged and the message is acknowledged.
func (wb *WatermillBridge) dispatch(ctx context.Context, topic string, handler Handler, wm *message.Message) {
	defer wm.Ack()
	defer func() {
		if r := recover(); r != nil {
			wb.logger.ErrorContext(ctx, "Message handler panicked",
				"event", "pubsub_handler_panic", "topic", topic, "msg_id", wm.UUID, "panic", r)
		}
	}()

	if err := handler(ctx, fromWatermill(wm)); err != nil {
		wb.logger.ErrorContext(ctx, "Failed to handle message",
			"event", "pubsub_handler_failure", "topic", topic, "msg_id", wm.UUID, "error", err)
	}
}

// Close shuts the channel and waits for every subscription loop to finish.
func (wb *WatermillBridge) Close() error {
	err := wb.channel.Close()
	wb.loops.Wait()
	return err
}

var _ Bus = (*WatermillBridge)(nil)
