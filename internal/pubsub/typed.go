package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// EventInfo describes a registered event topic.
type EventInfo struct {
	Name          string
	Module        string
	Description   string
	PayloadFields []string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]EventInfo{}
)

// Event[T] wraps a topic name and provides type-safe publishing.
type Event[T any] struct {
	topicName string
}

// NewEvent creates a typed event and registers it so tooling can list it.
// Payload field names are taken from the json tags of T. Registering the same
// name twice panics, since events are declared at package level.
func NewEvent[T any](name string, description string) Event[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var fields []string
	if t != nil && t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			fieldName, _, _ := strings.Cut(tag, ",")
			fields = append(fields, fieldName)
		}
	}

	module, _, _ := strings.Cut(name, ".")

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("pubsub: event %q registered twice", name))
	}
	registry[name] = EventInfo{
		Name:          name,
		Module:        module,
		Description:   description,
		PayloadFields: fields,
	}

	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Decode unmarshals a message payload published for this event.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if msg.Topic != e.topicName {
		return payload, fmt.Errorf("pubsub: message topic %q is not %q", msg.Topic, e.topicName)
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("pubsub: decode %s: %w", e.topicName, err)
	}
	return payload, nil
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		UserID:  userID,
		Payload: data,
	})
}

// RegisteredEvents lists every event declared with NewEvent, sorted by name.
func RegisteredEvents() []EventInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]EventInfo, 0, len(registry))
	for _, info := range registry {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
