package kernel

import (
	"fmt"

	"salesdesk/internal/pkg/errs"
)

// Role is the function a user performs in the sales workflow.
type Role int

const (
	// RoleNone is held by unauthenticated callers.
	RoleNone Role = iota
	RoleAdmin
	RoleClient
	RoleConfirmer
	RoleBuyer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleNone:      "none",
		RoleAdmin:     "admin",
		RoleClient:    "client",
		RoleConfirmer: "confirmer",
		RoleBuyer:     "buyer",
	}
}

// RoleFromString parses the persisted/role-claim form of a role. "none" is
// not accepted: it is never stored.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleNone && str == s {
			return role, nil
		}
	}
	return RoleNone, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate rejects RoleNone and unknown values.
func (r Role) Validate() error {
	if r == RoleNone {
		return errs.NewValueIsRequiredError("role")
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
