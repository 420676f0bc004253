package postgres

import (
	"salesdesk/internal/adapters/out/postgres/orderrepo"
	"salesdesk/internal/adapters/out/postgres/userrepo"
	"salesdesk/internal/core/ports"

	"gorm.io/gorm"
)

// GormReadModel hands out repositories bound to the plain connection. Queries
// and the notification loader read through it without opening a transaction.
type GormReadModel struct {
	db *gorm.DB
}

func NewGormReadModel(db *gorm.DB) *GormReadModel {
	return &GormReadModel{db: db}
}

func (m *GormReadModel) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(m.db)
}

func (m *GormReadModel) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(m.db)
}

// Migrate creates or alters the tables of every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{})
}
