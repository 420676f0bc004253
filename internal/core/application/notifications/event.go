// Package notifications defines the real-time events emitted after an order is
// created or changed, and the port through which they leave the application.
//
// Delivery is best effort: publishers never report failures back to the
// command that produced the event.
package notifications

import (
	"context"
	"fmt"
	"time"

	"salesdesk/internal/core/application/views"
	"salesdesk/internal/pkg/errs"
)

// Kind distinguishes notification types.
type Kind string

const (
	KindNewOrder     Kind = "new_order"
	KindOrderUpdated Kind = "order_updated"
)

// MessageTypeNotification is the envelope type of every order event.
const MessageTypeNotification = "notification"

// Notification is the payload shown to staff.
type Notification struct {
	ID        string          `json:"id"`
	Type      Kind            `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Data      views.OrderView `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Read      bool            `json:"read"`
}

// Event is the envelope written to every listener.
type Event struct {
	Type         string       `json:"type"`
	Notification Notification `json:"notification"`
}

// Publisher delivers events to connected listeners.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// New builds the event of the given kind for an order.
func New(kind Kind, view views.OrderView, at time.Time) Event {
	n := Notification{
		ID:        view.ID,
		Type:      kind,
		Data:      view,
		Timestamp: at,
	}

	switch kind {
	case KindNewOrder:
		n.Title = "New order"
		n.Message = fmt.Sprintf("New %s order from %s", view.Type.Label(), view.FullName)
	default:
		n.Title = "Order updated"
		n.Message = fmt.Sprintf("Order from %s was updated", view.FullName)
	}

	return Event{Type: MessageTypeNotification, Notification: n}
}

// NewOrderCreated is the event emitted once an order has been stored.
func NewOrderCreated(view views.OrderView, at time.Time) Event {
	return New(KindNewOrder, view, at)
}

// NewOrderUpdated is the event emitted after any change to an order.
func NewOrderUpdated(view views.OrderView, at time.Time) Event {
	return New(KindOrderUpdated, view, at)
}

// Validate accepts the known kinds.
func (k Kind) Validate() error {
	switch k {
	case KindNewOrder, KindOrderUpdated:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a notification kind", string(k)))
	}
}
