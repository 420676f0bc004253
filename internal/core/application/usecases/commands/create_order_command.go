package commands

import (
	"errors"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/pkg/errs"
	"salesdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderInput carries the raw fields of an order submission.
// ConfirmerID and BuyerID are only honoured for authenticated callers.
type CreateOrderInput struct {
	Kind        string
	Price       decimal.Decimal
	PhoneNumber string
	FullName    string
	Day         string
	Hour        string
	Photo       string
	Description string
	ConfirmerID *kernel.UUID
	BuyerID     *kernel.UUID
}

// CreateOrderCommand represents a client submission or a staff-entered order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), kernel.Anonymous(), CreateOrderInput{
//	    Kind:        "usb",
//	    Price:       decimal.NewFromInt(100),
//	    PhoneNumber: "0500000000",
//	    FullName:    "Ali",
//	    Day:         "2024-01-01",
//	    Hour:        "10:00",
//	    Description: "x",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	principal   kernel.Principal
	details     order.Details
	confirmerID *kernel.UUID
	buyerID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field of input and returns all
// violations together. An anonymous caller may not request an assignment.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	principal kernel.Principal,
	input CreateOrderInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetails(input),
		cmd.setAssignment(input.ConfirmerID, input.BuyerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Principal() kernel.Principal {
	return c.principal
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// ConfirmerID is the requested confirmer, or nil.
func (c CreateOrderCommand) ConfirmerID() *kernel.UUID {
	return c.confirmerID
}

// BuyerID is the requested buyer, or nil.
func (c CreateOrderCommand) BuyerID() *kernel.UUID {
	return c.buyerID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDetails(input CreateOrderInput) error {
	contact, errContact := order.NewContact(input.PhoneNumber, input.FullName)
	slot, errTime := parseScheduledTime(input.Day, input.Hour)
	kind := order.Kind(input.Kind)

	if err := errors.Join(
		kind.Validate(),
		order.ValidatePrice(input.Price),
		errContact,
		errTime,
		order.ValidateDescription(input.Description),
	); err != nil {
		return err
	}

	c.details = order.Details{
		Kind:          kind,
		Price:         input.Price,
		Contact:       contact,
		ScheduledTime: slot,
		Photo:         input.Photo,
		Description:   input.Description,
	}
	return nil
}

func (c *CreateOrderCommand) setAssignment(confirmerID, buyerID *kernel.UUID) error {
	if confirmerID == nil && buyerID == nil {
		return nil
	}
	if !c.principal.IsAuthenticated() {
		return errs.NewAccessDeniedError("assignment requires an authenticated user")
	}

	for _, id := range []*kernel.UUID{confirmerID, buyerID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.confirmerID = confirmerID
	c.buyerID = buyerID
	return nil
}

func parseScheduledTime(day, hour string) (kernel.Slot, error) {
	if day == "" && hour == "" {
		return kernel.Slot{}, errs.NewValueIsRequiredError("time")
	}
	return kernel.ParseSlot(day, hour)
}
