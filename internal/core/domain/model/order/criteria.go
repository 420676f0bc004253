package order

import (
	"time"

	"salesdesk/internal/core/domain/model/kernel"
)

// Criteria narrows an order listing. Empty criteria match every order; set
// fields are combined with AND. Listings are always newest first.
type Criteria struct {
	// ConfirmerID keeps orders assigned to this confirmer.
	ConfirmerID *kernel.UUID
	// UnassignedOnly keeps orders in the confirmer pool.
	UnassignedOnly bool
	// BuyerID keeps orders assigned to this buyer.
	BuyerID *kernel.UUID
	// CreatedSince keeps orders created at or after this instant.
	CreatedSince *time.Time
}

// Matches evaluates the criteria against a single order, mirroring what the
// repository does in SQL.
func (c Criteria) Matches(o *Order) bool {
	if c.ConfirmerID != nil && !kernel.SameUUID(o.confirmation.confirmerID, *c.ConfirmerID) {
		return false
	}
	if c.UnassignedOnly && !o.IsUnassigned() {
		return false
	}
	if c.BuyerID != nil && !kernel.SameUUID(o.confirmation.buyerID, *c.BuyerID) {
		return false
	}
	if c.CreatedSince != nil && o.createdAt.Before(*c.CreatedSince) {
		return false
	}
	return true
}
