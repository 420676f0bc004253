package commands

import (
	"context"

	"salesdesk/internal/core/application/notifications"
	"salesdesk/internal/core/application/views"
	"salesdesk/internal/core/domain/services"
	"salesdesk/internal/pkg/clock"
)

// UpdateFulfillmentCommandHandler applies a fulfillment patch for an admin or
// the order's assigned buyer.
type UpdateFulfillmentCommandHandler struct {
	uowFactory UoWFactory
	publisher  notifications.Publisher
	policy     services.VisibilityPolicy
	clock      clock.Clock
}

func NewUpdateFulfillmentCommandHandler(
	uowFactory UoWFactory,
	publisher notifications.Publisher,
	policy services.VisibilityPolicy,
	clk clock.Clock,
) UpdateFulfillmentCommandHandler {
	return UpdateFulfillmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     policy,
		clock:      clk,
	}
}

// Handle sets the status first, then the retrying flag and outcome, and the
// follow-up last so that it is judged against the new status and outcome.
func (h UpdateFulfillmentCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateFulfillmentCommand,
) (views.OrderView, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return views.OrderView{}, err
	}

	if err = h.policy.AuthorizeFulfillmentUpdate(cmd.Principal(), o); err != nil {
		return views.OrderView{}, err
	}

	patch := cmd.Patch()
	if err = o.SetFulfillmentStatus(patch.Status); err != nil {
		return views.OrderView{}, err
	}
	if patch.IsRetrying != nil {
		o.SetRetrying(*patch.IsRetrying)
	}
	if patch.Outcome != nil {
		if err = o.RecordOutcome(*patch.Outcome); err != nil {
			return views.OrderView{}, err
		}
	}
	if patch.FollowUp != nil {
		if err = o.ScheduleFollowUp(*patch.FollowUp); err != nil {
			return views.OrderView{}, err
		}
	}

	now := h.clock.Now()
	o.Touch(now)

	if err = orderRepo.Update(ctx, o); err != nil {
		return views.OrderView{}, err
	}

	view, err := views.ResolveOrder(ctx, uow.UserRepository(), o)
	if err != nil {
		return views.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderView{}, err
	}

	h.publisher.Publish(ctx, notifications.NewOrderUpdated(view, now))
	return view, nil
}
