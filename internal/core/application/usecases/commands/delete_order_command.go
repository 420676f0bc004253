package commands

import (
	"errors"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
	ErrDeleteAllOrdersCommandIsNotConstructed = errors.New(
		"DeleteAllOrdersCommand must be created via NewDeleteAllOrdersCommand constructor",
	)
)

// DeleteOrderCommand removes one order for good.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.UUID, principal kernel.Principal) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeleteOrderCommand) Principal() kernel.Principal {
	return c.principal
}

// DeleteAllOrdersCommand empties the order store.
type DeleteAllOrdersCommand struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewDeleteAllOrdersCommand(principal kernel.Principal) DeleteAllOrdersCommand {
	return DeleteAllOrdersCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}
}

func (c DeleteAllOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAllOrdersCommandIsNotConstructed)
}

func (c DeleteAllOrdersCommand) Principal() kernel.Principal {
	return c.principal
}
