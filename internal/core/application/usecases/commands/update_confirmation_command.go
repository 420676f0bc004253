package commands

import (
	"errors"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/pkg/guard"
)

var ErrUpdateConfirmationCommandIsNotConstructed = errors.New(
	"UpdateConfirmationCommand must be created via NewUpdateConfirmationCommand constructor",
)

// ConfirmationPatch is the confirmer's update. Nil fields leave the order
// untouched, so an admin can reassign without recording a call.
type ConfirmationPatch struct {
	Status          *order.ConfirmationStatus
	Rendezvous      *kernel.Slot
	ConfirmerID     *kernel.UUID
	BuyerID         *kernel.UUID
	AdditionalNotes *string
}

// UpdateConfirmationCommand records the result of a confirmer's call.
type UpdateConfirmationCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal kernel.Principal
	patch     ConfirmationPatch

	guard guard.ConstructorGuard
}

func NewUpdateConfirmationCommand(
	orderID kernel.UUID,
	principal kernel.Principal,
	patch ConfirmationPatch,
) (UpdateConfirmationCommand, error) {
	cmd := UpdateConfirmationCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateConfirmationCommand{}, err
	}

	return cmd, nil
}

func (c UpdateConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConfirmationCommandIsNotConstructed)
}

func (c UpdateConfirmationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateConfirmationCommand) Principal() kernel.Principal {
	return c.principal
}

func (c UpdateConfirmationCommand) Patch() ConfirmationPatch {
	return c.patch
}

func (c *UpdateConfirmationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateConfirmationCommand) setPatch(patch ConfirmationPatch) error {
	var errStatus, errRendezvous, errConfirmer, errBuyer error
	if patch.Status != nil {
		errStatus = patch.Status.Validate()
	}
	if patch.Rendezvous != nil {
		errRendezvous = patch.Rendezvous.Validate()
	}
	if patch.ConfirmerID != nil {
		errConfirmer = patch.ConfirmerID.Validate()
	}
	if patch.BuyerID != nil {
		errBuyer = patch.BuyerID.Validate()
	}

	if err := errors.Join(errStatus, errRendezvous, errConfirmer, errBuyer); err != nil {
		return err
	}

	c.patch = patch
	return nil
}
