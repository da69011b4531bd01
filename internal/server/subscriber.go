package server

import (
	"context"
	"log/slog"

	"github.com/sudostake/onboard/internal/pubsub"
	"github.com/sudostake/onboard/internal/topics"
)

// StartSubscribers attaches the background event consumers. For now
// that is a single audit-style logger for session lifecycle events.
func (s *Server) StartSubscribers(ctx context.Context) error {
	logEvent := func(ctx context.Context, ev pubsub.Event) error {
		slog.Info("session event",
			"topic", ev.Topic,
			"address", ev.Address,
			"chain_id", ev.Metadata["chain_id"],
			"network", ev.Metadata["network"],
		)
		return nil
	}

	if err := s.Bus.Subscribe(ctx, topics.SessionSignedIn, logEvent); err != nil {
		return err
	}
	return s.Bus.Subscribe(ctx, topics.SessionSignedOut, logEvent)
}
