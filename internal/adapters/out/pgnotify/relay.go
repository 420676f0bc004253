package pgnotify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"salesdesk/internal/core/application/notifications"
	"salesdesk/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// EventLoader rebuilds the full event from the stored order.
type EventLoader interface {
	Load(ctx context.Context, kind notifications.Kind, orderID kernel.UUID) (notifications.Event, error)
}

// Broadcaster accepts one serialised frame for every local listener.
type Broadcaster interface {
	Broadcast(data []byte)
}

// Relay listens on a NOTIFY channel and rebroadcasts every received event to
// the listeners of this instance.
//
// Example:
//
//	relay := pgnotify.NewRelay(dsn, "order_events", loader, hub, logger)
//	go func() {
//	    if err := relay.Run(ctx); err != nil {
//	        logger.Error("relay stopped", "error", err)
//	    }
//	}()
type Relay struct {
	dsn     string
	channel string
	loader  EventLoader
	hub     Broadcaster
	logger  *slog.Logger
}

func NewRelay(dsn, channel string, loader EventLoader, hub Broadcaster, logger *slog.Logger) *Relay {
	return &Relay{
		dsn:     dsn,
		channel: channel,
		loader:  loader,
		hub:     hub,
		logger:  logger.With("component", "pgnotify_relay", "channel", channel),
	}
}

// Run blocks until ctx is cancelled. It only returns an error when the
// channel cannot be subscribed to.
func (r *Relay) Run(ctx context.Context) error {
	listener := pq.NewListener(r.dsn, minReconnectInterval, maxReconnectInterval, r.onListenerEvent)
	defer func() {
		if err := listener.Close(); err != nil {
			r.logger.Warn("Failed to close listener", "error", err)
		}
	}()

	if err := listener.Listen(r.channel); err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "Relay started")

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "Relay stopped")
			return nil
		case n := <-listener.Notify:
			// nil after a reconnect; notifications sent meanwhile are lost
			if n == nil {
				continue
			}
			if err := r.Dispatch(ctx, n.Extra); err != nil {
				r.logger.ErrorContext(ctx, "Failed to relay notification", "error", err, "payload", n.Extra)
			}
		case <-time.After(pingInterval):
			go func() {
				if err := listener.Ping(); err != nil {
					r.logger.Warn("Listener ping failed", "error", err)
				}
			}()
		}
	}
}

// Dispatch handles one NOTIFY body: it reloads the order and broadcasts the event.
func (r *Relay) Dispatch(ctx context.Context, raw string) error {
	payload, err := DecodePayload(raw)
	if err != nil {
		return err
	}

	event, err := r.loader.Load(ctx, payload.Kind, payload.OrderID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	r.hub.Broadcast(data)
	return nil
}

func (r *Relay) onListenerEvent(event pq.ListenerEventType, err error) {
	switch event {
	case pq.ListenerEventConnected:
		r.logger.Info("Listener connected")
	case pq.ListenerEventDisconnected:
		r.logger.Warn("Listener disconnected", "error", err)
	case pq.ListenerEventReconnected:
		r.logger.Info("Listener reconnected")
	case pq.ListenerEventConnectionAttemptFailed:
		r.logger.Warn("Listener connection attempt failed", "error", err)
	}
}
