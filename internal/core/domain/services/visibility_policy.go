package services

import (
	"fmt"
	"time"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/pkg/errs"
)

// RecentWindow is how far back the "recent" list scope looks.
const RecentWindow = 5 * time.Minute

// Scope names a role-specific order listing.
type Scope string

const (
	// ScopeRecent lists orders created within RecentWindow. Admins see all of
	// them, confirmers only their own.
	ScopeRecent Scope = "recent"
	// ScopeAll lists every order. Admin only.
	ScopeAll Scope = "all"
	// ScopeConfirmer lists the confirmer's own orders.
	ScopeConfirmer Scope = "confirmer"
	// ScopeUnassigned lists the confirmer pool.
	ScopeUnassigned Scope = "unassigned"
	// ScopeBuyer lists the buyer's own orders.
	ScopeBuyer Scope = "buyer"
)

// Validate accepts the known scopes.
func (s Scope) Validate() error {
	switch s {
	case ScopeRecent, ScopeAll, ScopeConfirmer, ScopeUnassigned, ScopeBuyer:
		return nil
	case "":
		return errs.NewValueIsRequiredError("scope")
	default:
		return errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("%q is not a valid scope", string(s)))
	}
}

// VisibilityPolicy decides which orders a principal may see or change.
//
// Rules:
//   - Admins read and write every order
//   - Confirmers read unassigned orders and the ones assigned to them, and
//     write only the latter
//   - Buyers read and write the orders assigned to them
//   - Clients and anonymous callers can neither read nor write
//
// The policy is stateless and safe for concurrent use.
//
// Example usage:
//
//	policy := services.NewVisibilityPolicy()
//	if !policy.CanRead(principal, o) {
//	    return errs.NewAccessDeniedError("order is not visible")
//	}
type VisibilityPolicy struct{}

func NewVisibilityPolicy() VisibilityPolicy {
	return VisibilityPolicy{}
}

// CanRead reports whether principal may fetch o.
func (VisibilityPolicy) CanRead(principal kernel.Principal, o *order.Order) bool {
	switch {
	case principal.IsAdmin():
		return true
	case principal.Is(kernel.RoleConfirmer):
		return o.IsUnassigned() || kernel.SameUUID(o.Confirmation().Confirmer(), principal.ID())
	case principal.Is(kernel.RoleBuyer):
		return kernel.SameUUID(o.Confirmation().Buyer(), principal.ID())
	default:
		return false
	}
}

// CanWrite reports whether principal may modify o in some way.
func (VisibilityPolicy) CanWrite(principal kernel.Principal, o *order.Order) bool {
	switch {
	case principal.IsAdmin():
		return true
	case principal.Is(kernel.RoleConfirmer):
		return kernel.SameUUID(o.Confirmation().Confirmer(), principal.ID())
	case principal.Is(kernel.RoleBuyer):
		return kernel.SameUUID(o.Confirmation().Buyer(), principal.ID())
	default:
		return false
	}
}

// AuthorizeRead is CanRead returning an access denied error.
func (p VisibilityPolicy) AuthorizeRead(principal kernel.Principal, o *order.Order) error {
	if p.CanRead(principal, o) {
		return nil
	}
	return errs.NewAccessDeniedError("order is not visible to " + principal.Role().String())
}

// AuthorizeConfirmationUpdate allows admins and the assigned confirmer. A
// confirmer cannot claim a pool order by updating it.
func (VisibilityPolicy) AuthorizeConfirmationUpdate(principal kernel.Principal, o *order.Order) error {
	if principal.IsAdmin() {
		return nil
	}
	if principal.Is(kernel.RoleConfirmer) && kernel.SameUUID(o.Confirmation().Confirmer(), principal.ID()) {
		return nil
	}
	return errs.NewAccessDeniedError("only an admin or the assigned confirmer may update confirmation")
}

// AuthorizeFulfillmentUpdate allows admins and the assigned buyer. A buyer on
// an order without an assigned buyer is always refused.
func (VisibilityPolicy) AuthorizeFulfillmentUpdate(principal kernel.Principal, o *order.Order) error {
	if principal.IsAdmin() {
		return nil
	}
	if principal.Is(kernel.RoleBuyer) && kernel.SameUUID(o.Confirmation().Buyer(), principal.ID()) {
		return nil
	}
	return errs.NewAccessDeniedError("only an admin or the assigned buyer may update fulfillment")
}

// AuthorizeAdmin refuses everyone but admins.
func (VisibilityPolicy) AuthorizeAdmin(principal kernel.Principal) error {
	if principal.IsAdmin() {
		return nil
	}
	return errs.NewAccessDeniedError("admin role required")
}

// CriteriaFor translates a list scope into repository criteria for principal,
// refusing scopes the principal's role is not entitled to.
func (VisibilityPolicy) CriteriaFor(principal kernel.Principal, scope Scope, now time.Time) (order.Criteria, error) {
	if err := scope.Validate(); err != nil {
		return order.Criteria{}, err
	}

	id := principal.ID()
	since := now.Add(-RecentWindow)

	switch {
	case scope == ScopeRecent && principal.IsAdmin():
		return order.Criteria{CreatedSince: &since}, nil
	case scope == ScopeRecent && principal.Is(kernel.RoleConfirmer):
		return order.Criteria{ConfirmerID: &id, CreatedSince: &since}, nil
	case scope == ScopeAll && principal.IsAdmin():
		return order.Criteria{}, nil
	case scope == ScopeConfirmer && principal.Is(kernel.RoleConfirmer):
		return order.Criteria{ConfirmerID: &id}, nil
	case scope == ScopeUnassigned && principal.Is(kernel.RoleConfirmer):
		return order.Criteria{UnassignedOnly: true}, nil
	case scope == ScopeBuyer && principal.Is(kernel.RoleBuyer):
		return order.Criteria{BuyerID: &id}, nil
	}

	return order.Criteria{}, errs.NewAccessDeniedError(
		fmt.Sprintf("role %s cannot list %s orders", principal.Role(), scope),
	)
}
