// Package ports defines the persistence contracts of the sales domain.
// Adapters under internal/adapters/out implement them; the application layer
// depends only on these interfaces.
package ports

import (
	"context"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites the stored state of an existing order. There is no
	// version check: the last writer wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier. Returns errs.ErrObjectNotFound
	// when no order has that identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Find returns the orders matching criteria, newest first.
	//
	// Example:
	//   since := now.Add(-5 * time.Minute)
	//   recent, err := repo.Find(ctx, order.Criteria{CreatedSince: &since})
	Find(ctx context.Context, criteria order.Criteria) ([]*order.Order, error)

	// Delete removes a single order. Returns errs.ErrObjectNotFound when no
	// order has that identifier.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAll removes every order and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
