package ports

import (
	"context"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/user"
)

// UserRepository is the read side of the user directory plus the insert used
// by the seed command.
type UserRepository interface {
	// Add persists a new user. Usernames are unique.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier. Returns errs.ErrObjectNotFound when
	// no user has that identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by username. Returns errs.ErrObjectNotFound
	// when the username is unknown.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetMany loads the users with the given identifiers. Unknown identifiers
	// are skipped silently.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*user.User, error)
}
