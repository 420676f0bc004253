// Package broadcast publishes notification events straight to the listeners
// connected to this process.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"salesdesk/internal/core/application/notifications"
)

// Broadcaster accepts one serialised frame for every listener.
type Broadcaster interface {
	Broadcast(data []byte)
}

// Publisher serialises each event once and hands it to the broadcaster.
type Publisher struct {
	hub    Broadcaster
	logger *slog.Logger
}

func NewPublisher(hub Broadcaster, logger *slog.Logger) *Publisher {
	return &Publisher{
		hub:    hub,
		logger: logger.With("component", "broadcast_publisher"),
	}
}

// Publish never fails the caller; an event that cannot be encoded is logged and dropped.
func (p *Publisher) Publish(ctx context.Context, event notifications.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to encode notification", "error", err, "order_id", event.Notification.ID)
		return
	}

	p.hub.Broadcast(data)
	p.logger.DebugContext(ctx, "Notification broadcast",
		"kind", event.Notification.Type,
		"order_id", event.Notification.ID,
	)
}
