package pubsub

import "context"

// Event is the structure passed between components on the bus.
type Event struct {
	// Topic identifies the channel the event belongs to
	// (e.g. "session.signed_in").
	Topic string
	// Address is the account address the event concerns, when known.
	Address string
	// Payload contains the encoded event data.
	Payload []byte
	// Metadata carries arbitrary key-value context (chain, network).
	Metadata map[string]string
}

// Handler processes a received event.
type Handler func(ctx context.Context, ev Event) error

// Publisher sends events to the bus.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Subscriber receives events from the bus.
type Subscriber interface {
	// Subscribe starts listening to the topic, processing events with
	// the handler. It returns once the subscription is active; delivery
	// happens in the background until the context is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
