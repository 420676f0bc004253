package notifications

import (
	"context"

	"salesdesk/internal/core/application/views"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/ports"
	"salesdesk/internal/pkg/clock"
)

// OrderReader is the read access the Loader needs.
type OrderReader interface {
	OrderRepository() ports.OrderRepository
	UserRepository() ports.UserRepository
}

// Loader rebuilds an event from the stored order. It is used when only the
// order identifier travelled between instances.
type Loader struct {
	reader OrderReader
	clock  clock.Clock
}

func NewLoader(reader OrderReader, clk clock.Clock) Loader {
	return Loader{reader: reader, clock: clk}
}

// Load reads the current state of the order and wraps it in an event of the
// given kind.
func (l Loader) Load(ctx context.Context, kind Kind, orderID kernel.UUID) (Event, error) {
	if err := kind.Validate(); err != nil {
		return Event{}, err
	}

	o, err := l.reader.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return Event{}, err
	}

	view, err := views.ResolveOrder(ctx, l.reader.UserRepository(), o)
	if err != nil {
		return Event{}, err
	}

	return New(kind, view, l.clock.Now()), nil
}
