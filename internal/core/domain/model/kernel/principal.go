package kernel

// Principal is the authenticated actor behind a request. The zero value is the
// anonymous principal, which may only submit new orders.
type Principal struct {
	id   UUID
	role Role
}

// NewPrincipal builds an authenticated principal.
func NewPrincipal(id UUID, role Role) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{id: id, role: role}, nil
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{}
}

func (p Principal) ID() UUID {
	return p.id
}

func (p Principal) Role() Role {
	return p.role
}

// IsAuthenticated reports whether the principal carries an identity.
func (p Principal) IsAuthenticated() bool {
	return p.id.Validate() == nil && p.role != RoleNone
}

// Is reports whether the principal is authenticated with the given role.
func (p Principal) Is(role Role) bool {
	return p.IsAuthenticated() && p.role == role
}

// IsAdmin is shorthand for Is(RoleAdmin).
func (p Principal) IsAdmin() bool {
	return p.Is(RoleAdmin)
}
