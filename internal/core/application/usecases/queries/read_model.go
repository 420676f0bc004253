// Package queries contains the read operations on orders. Queries never open
// a transaction; they read through repositories bound to the plain database
// connection.
package queries

import "salesdesk/internal/core/ports"

// ReadModel gives queries access to the stored orders and users.
type ReadModel interface {
	OrderRepository() ports.OrderRepository
	UserRepository() ports.UserRepository
}
