// Package userrepo persists the user directory used for assignments and
// request principals.
package userrepo

import (
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Role     string    `gorm:"type:varchar(16);index;not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:       u.ID().Bytes(),
		Username: u.Username(),
		Role:     u.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, role)
}
