package user

import (
	"errors"
	"strings"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/pkg/errs"
	"salesdesk/internal/pkg/guard"
)

var (
	// ErrUsernameIsRequired is returned when a user is created without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrUserIsNotConstructed is returned when using a zero-value User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is a member of staff or a client account.
//
// Example usage:
//
//	u, err := user.NewUser(kernel.NewUUID(), "confirmer1", kernel.RoleConfirmer)
//	if err != nil {
//	    return err
//	}
//	principal, _ := kernel.NewPrincipal(u.ID(), u.Role())
type User struct {
	id       kernel.UUID
	username string
	role     kernel.Role
	guard    guard.ConstructorGuard
}

// NewUser validates every field and returns all violations together.
func NewUser(id kernel.UUID, username string, role kernel.Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(id kernel.UUID, username string, role kernel.Role) (*User, error) {
	return NewUser(id, username, role)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Role() kernel.Role {
	return u.role
}

// Principal returns the identity this user acts with.
func (u *User) Principal() kernel.Principal {
	p, _ := kernel.NewPrincipal(u.id, u.role)
	return p
}

// HasRole reports whether the user can be assigned to a slot that requires role.
func (u *User) HasRole(role kernel.Role) bool {
	return u.role == role
}

func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
