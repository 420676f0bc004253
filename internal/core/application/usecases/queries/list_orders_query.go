package queries

import (
	"errors"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/services"
	"salesdesk/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders of one scope for principal. Which scopes a
// role may ask for is decided by services.VisibilityPolicy.
type ListOrdersQuery struct {
	principal kernel.Principal
	scope     services.Scope

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(principal kernel.Principal, scope services.Scope) (ListOrdersQuery, error) {
	if err := scope.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		principal: principal,
		scope:     scope,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Principal() kernel.Principal {
	return q.principal
}

func (q ListOrdersQuery) Scope() services.Scope {
	return q.scope
}
