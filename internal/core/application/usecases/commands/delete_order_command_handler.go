package commands

import (
	"context"

	"salesdesk/internal/core/domain/services"
)

// DeleteOrderCommandHandler hard-deletes orders on behalf of an admin. No
// notification is emitted for deletions.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.VisibilityPolicy
}

func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.VisibilityPolicy,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle deletes one order. Fails with errs.ErrObjectNotFound when the order
// does not exist.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.AuthorizeAdmin(cmd.Principal()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// HandleAll deletes every order and returns how many were removed.
func (h DeleteOrderCommandHandler) HandleAll(ctx context.Context, cmd DeleteAllOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := h.policy.AuthorizeAdmin(cmd.Principal()); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.OrderRepository().DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return deleted, nil
}
