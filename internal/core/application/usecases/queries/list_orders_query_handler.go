package queries

import (
	"context"

	"salesdesk/internal/core/application/views"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/core/domain/services"
	"salesdesk/internal/pkg/clock"
)

// ListOrdersQueryHandler serves the role-scoped order listings, newest first.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(readModel, services.NewVisibilityPolicy(), clock.NewSystem())
//	query, _ := NewListOrdersQuery(principal, services.ScopeUnassigned)
//	pool, err := handler.Handle(ctx, query)
type ListOrdersQueryHandler struct {
	readModel ReadModel
	policy    services.VisibilityPolicy
	clock     clock.Clock
}

func NewListOrdersQueryHandler(
	readModel ReadModel,
	policy services.VisibilityPolicy,
	clk clock.Clock,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{readModel: readModel, policy: policy, clock: clk}
}

// Handle translates the scope into criteria and drops anything the principal
// could not read one by one, so a listing never shows more than GetOrder would.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	criteria, err := h.policy.CriteriaFor(query.Principal(), query.Scope(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	found, err := h.readModel.OrderRepository().Find(ctx, criteria)
	if err != nil {
		return nil, err
	}

	visible := make([]*order.Order, 0, len(found))
	for _, o := range found {
		if h.policy.CanRead(query.Principal(), o) {
			visible = append(visible, o)
		}
	}

	return views.ResolveOrders(ctx, h.readModel.UserRepository(), visible)
}
