package queries

import (
	"errors"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order on behalf of principal.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, principal)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID   kernel.UUID
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, principal kernel.Principal) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Principal() kernel.Principal {
	return q.principal
}
