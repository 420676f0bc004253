package pgnotify

import (
	"context"
	"log/slog"

	"salesdesk/internal/core/application/notifications"
	"salesdesk/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// Publisher sends the kind and order identifier of each event on a NOTIFY
// channel. The event body is rebuilt by the Relay of every instance.
type Publisher struct {
	db      *gorm.DB
	channel string
	logger  *slog.Logger
}

func NewPublisher(db *gorm.DB, channel string, logger *slog.Logger) *Publisher {
	return &Publisher{
		db:      db,
		channel: channel,
		logger:  logger.With("component", "pgnotify_publisher", "channel", channel),
	}
}

// Publish issues pg_notify outside of any transaction. Failures are logged only.
func (p *Publisher) Publish(ctx context.Context, event notifications.Event) {
	id, err := kernel.UUIDFromString(event.Notification.ID)
	if err != nil {
		p.logger.ErrorContext(ctx, "Notification without order id", "error", err)
		return
	}

	body, err := Payload{Kind: event.Notification.Type, OrderID: id}.Encode()
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to encode notify payload", "error", err, "order_id", id.String())
		return
	}

	if err = p.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", p.channel, body).Error; err != nil {
		p.logger.ErrorContext(ctx, "Failed to send notify", "error", err, "order_id", id.String())
		return
	}

	p.logger.DebugContext(ctx, "Notify sent", "kind", event.Notification.Type, "order_id", id.String())
}
