package commands

import (
	"context"
	"errors"
	"fmt"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/ports"
	"salesdesk/internal/pkg/errs"
)

// checkAssignee verifies that id names an existing user holding role. Unknown
// users and role mismatches are reported as invalid assignments under param.
func checkAssignee(
	ctx context.Context,
	users ports.UserRepository,
	id *kernel.UUID,
	role kernel.Role,
	param string,
) error {
	if id == nil {
		return nil
	}

	u, err := users.Get(ctx, *id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewInvalidAssignmentErrorWithCause(param, id.String(), err)
	}
	if err != nil {
		return err
	}

	if !u.HasRole(role) {
		return errs.NewInvalidAssignmentErrorWithCause(
			param,
			id.String(),
			fmt.Errorf("user %s is a %s, not a %s", u.Username(), u.Role(), role),
		)
	}
	return nil
}
