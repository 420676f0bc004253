package queries

import (
	"context"

	"salesdesk/internal/core/application/views"
	"salesdesk/internal/core/domain/services"
)

// GetOrderQueryHandler returns a single order if the principal may read it.
// A missing order is reported before visibility is checked.
type GetOrderQueryHandler struct {
	readModel ReadModel
	policy    services.VisibilityPolicy
}

func NewGetOrderQueryHandler(readModel ReadModel, policy services.VisibilityPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{readModel: readModel, policy: policy}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (views.OrderView, error) {
	if err := query.Validate(); err != nil {
		return views.OrderView{}, err
	}

	o, err := h.readModel.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return views.OrderView{}, err
	}

	if err = h.policy.AuthorizeRead(query.Principal(), o); err != nil {
		return views.OrderView{}, err
	}

	return views.ResolveOrder(ctx, h.readModel.UserRepository(), o)
}
