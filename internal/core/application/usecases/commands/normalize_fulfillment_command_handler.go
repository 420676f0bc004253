package commands

import (
	"context"

	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/pkg/clock"
)

type NormalizeFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

func NewNormalizeFulfillmentCommandHandler(
	uowFactory OrderUoWFactory,
	clk clock.Clock,
) NormalizeFulfillmentCommandHandler {
	return NormalizeFulfillmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle rewrites every order in a single transaction and returns the number
// of orders touched.
func (h NormalizeFulfillmentCommandHandler) Handle(ctx context.Context, cmd NormalizeFulfillmentCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.Find(ctx, order.Criteria{})
	if err != nil {
		return 0, err
	}

	now := h.clock.Now()
	for _, o := range orders {
		o.NormalizeFulfillment()
		o.Touch(now)
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return len(orders), nil
}
