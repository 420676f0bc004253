package commands

import (
	"errors"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/pkg/guard"
)

var ErrUpdateFulfillmentCommandIsNotConstructed = errors.New(
	"UpdateFulfillmentCommand must be created via NewUpdateFulfillmentCommand constructor",
)

// FulfillmentPatch is the buyer's update. Status is mandatory; nil fields
// leave the order untouched.
type FulfillmentPatch struct {
	Status     order.FulfillmentStatus
	IsRetrying *bool
	Outcome    *order.Outcome
	FollowUp   *kernel.Slot
}

// UpdateFulfillmentCommand records the buyer's progress with the client.
//
// Example:
//
//	outcome, _ := order.NewOutcome(order.Sold, order.CashOnDelivery, "", "")
//	cmd, err := NewUpdateFulfillmentCommand(orderID, principal, FulfillmentPatch{
//	    Status:  order.UserResponse,
//	    Outcome: &outcome,
//	})
type UpdateFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal kernel.Principal
	patch     FulfillmentPatch

	guard guard.ConstructorGuard
}

func NewUpdateFulfillmentCommand(
	orderID kernel.UUID,
	principal kernel.Principal,
	patch FulfillmentPatch,
) (UpdateFulfillmentCommand, error) {
	cmd := UpdateFulfillmentCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateFulfillmentCommand{}, err
	}

	return cmd, nil
}

func (c UpdateFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFulfillmentCommandIsNotConstructed)
}

func (c UpdateFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateFulfillmentCommand) Principal() kernel.Principal {
	return c.principal
}

func (c UpdateFulfillmentCommand) Patch() FulfillmentPatch {
	return c.patch
}

func (c *UpdateFulfillmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateFulfillmentCommand) setPatch(patch FulfillmentPatch) error {
	var errOutcome, errFollowUp error
	if patch.Outcome != nil {
		errOutcome = patch.Outcome.Validate()
	}
	if patch.FollowUp != nil {
		errFollowUp = patch.FollowUp.Validate()
	}

	if err := errors.Join(patch.Status.Validate(), errOutcome, errFollowUp); err != nil {
		return err
	}

	c.patch = patch
	return nil
}
