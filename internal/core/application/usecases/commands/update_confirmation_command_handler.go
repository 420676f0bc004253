package commands

import (
	"context"
	"errors"

	"salesdesk/internal/core/application/notifications"
	"salesdesk/internal/core/application/views"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/services"
	"salesdesk/internal/pkg/clock"
)

// UpdateConfirmationCommandHandler applies a confirmation patch.
//
// Only admins and the assigned confirmer get through. Assignments in the
// patch are checked against the user directory before anything is changed,
// so a rejected patch leaves the stored order as it was.
type UpdateConfirmationCommandHandler struct {
	uowFactory UoWFactory
	publisher  notifications.Publisher
	policy     services.VisibilityPolicy
	clock      clock.Clock
}

func NewUpdateConfirmationCommandHandler(
	uowFactory UoWFactory,
	publisher notifications.Publisher,
	policy services.VisibilityPolicy,
	clk clock.Clock,
) UpdateConfirmationCommandHandler {
	return UpdateConfirmationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     policy,
		clock:      clk,
	}
}

func (h UpdateConfirmationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateConfirmationCommand,
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
	userRepo := uow.UserRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return views.OrderView{}, err
	}

	if err = h.policy.AuthorizeConfirmationUpdate(cmd.Principal(), o); err != nil {
		return views.OrderView{}, err
	}

	patch := cmd.Patch()
	if err = errors.Join(
		checkAssignee(ctx, userRepo, patch.ConfirmerID, kernel.RoleConfirmer, "currentConfirmer"),
		checkAssignee(ctx, userRepo, patch.BuyerID, kernel.RoleBuyer, "buyer"),
	); err != nil {
		return views.OrderView{}, err
	}

	if patch.Status != nil {
		if err = o.SetConfirmationStatus(*patch.Status); err != nil {
			return views.OrderView{}, err
		}
	}
	if patch.Rendezvous != nil {
		if err = o.ScheduleRendezvous(*patch.Rendezvous); err != nil {
			return views.OrderView{}, err
		}
	}
	if patch.ConfirmerID != nil {
		if err = o.AssignConfirmer(*patch.ConfirmerID); err != nil {
			return views.OrderView{}, err
		}
	}
	if patch.BuyerID != nil {
		if err = o.AssignBuyer(*patch.BuyerID); err != nil {
			return views.OrderView{}, err
		}
	}
	if patch.AdditionalNotes != nil {
		o.SetAdditionalNotes(*patch.AdditionalNotes)
	}

	now := h.clock.Now()
	o.Touch(now)

	if err = orderRepo.Update(ctx, o); err != nil {
		return views.OrderView{}, err
	}

	view, err := views.ResolveOrder(ctx, userRepo, o)
	if err != nil {
		return views.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.OrderView{}, err
	}

	h.publisher.Publish(ctx, notifications.NewOrderUpdated(view, now))
	return view, nil
}
