package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Bus implements Publisher and Subscriber over watermill's in-memory
// GoChannel. The onboarding flow has a single process, so an in-memory
// bus is sufficient; the interfaces leave room for a broker-backed
// implementation later.
type Bus struct {
	pub message.Publisher
	sub message.Subscriber
}

const (
	metaKeyAddress = "address"
)

// NewBus creates an in-memory event bus.
func NewBus() *Bus {
	ch := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	return &Bus{pub: ch, sub: ch}
}

// Publish sends the event on its topic.
func (b *Bus) Publish(ctx context.Context, ev Event) error {
	msg := message.NewMessage(uuid.NewString(), ev.Payload)
	msg.Metadata.Set(metaKeyAddress, ev.Address)
	for k, v := range ev.Metadata {
		msg.Metadata.Set(k, v)
	}
	return b.pub.Publish(ev.Topic, msg)
}

// Subscribe starts consuming the topic, dispatching each event to the
// handler in a background goroutine. Events whose handler errors are
// nacked and logged.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ev := Event{
				Topic:    topic,
				Address:  msg.Metadata.Get(metaKeyAddress),
				Payload:  msg.Payload,
				Metadata: map[string]string{},
			}
			for k, v := range msg.Metadata {
				if k != metaKeyAddress {
					ev.Metadata[k] = v
				}
			}

			if err := handler(ctx, ev); err != nil {
				slog.Error("event handler failed", "topic", topic, "msg_id", msg.UUID, "error", err)
				msg.Nack()
				continue
			}
			msg.Ack()
		}
		slog.Debug("subscription loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts the bus down and ends all subscription loops.
func (b *Bus) Close() error {
	return b.sub.Close()
}
