package commands

import (
	"context"
	"errors"

	"salesdesk/internal/core/application/notifications"
	"salesdesk/internal/core/application/views"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/pkg/clock"
)

// CreateOrderCommandHandler stores a new order and announces it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, clock.NewSystem())
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidAssignment) {
//	    // the confirmer or buyer does not exist or has another role
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  notifications.Publisher
	clock      clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher notifications.Publisher,
	clk clock.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clk,
	}
}

// Handle validates the requested assignment, persists the order with its
// initial statuses and publishes a new_order event once committed.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (views.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return views.OrderView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if err := errors.Join(
		checkAssignee(ctx, userRepo, cmd.ConfirmerID(), kernel.RoleConfirmer, "confirmerId"),
		checkAssignee(ctx, userRepo, cmd.BuyerID(), kernel.RoleBuyer, "buyerId"),
	); err != nil {
		return views.OrderView{}, err
	}

	now := h.clock.Now()
	o, err := order.NewOrder(cmd.OrderID(), cmd.Details(), now)
	if err != nil {
		return views.OrderView{}, err
	}
	if id := cmd.ConfirmerID(); id != nil {
		if err = o.AssignConfirmer(*id); err != nil {
			return views.OrderView{}, err
		}
	}
	if id := cmd.BuyerID(); id != nil {
		if err = o.AssignBuyer(*id); err != nil {
			return views.OrderView{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return views.OrderView{}, err
	}

	view, err := views.ResolveOrder(ctx, userRepo, o)
	if err != nil {
		return views.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderView{}, err
	}

	h.publisher.Publish(ctx, notifications.NewOrderCreated(view, now))
	return view, nil
}
