package queries_test

import (
	"context"
	"testing"
	"time"

	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/core/domain/model/user"
	"salesdesk/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type MockOrderRepository struct {
	mock.Mock
	ports.OrderRepository
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, criteria order.Criteria) ([]*order.Order, error) {
	args := m.Called(ctx, criteria)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
	ports.UserRepository
}

func (m *MockUserRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*user.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

type stubReadModel struct {
	orders *MockOrderRepository
	users  *MockUserRepository
}

func newReadModel() stubReadModel {
	return stubReadModel{orders: new(MockOrderRepository), users: new(MockUserRepository)}
}

func (s stubReadModel) OrderRepository() ports.OrderRepository {
	return s.orders
}

func (s stubReadModel) UserRepository() ports.UserRepository {
	return s.users
}

func newPrincipal(t *testing.T, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func newStoredOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	contact, _ := order.NewContact("0500000000", "Ali")
	slot, _ := kernel.ParseSlot("2024-01-01", "10:00")
	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Kind:          order.KindCourse,
		Price:         decimal.RequireFromString("250.50"),
		Contact:       contact,
		ScheduledTime: slot,
		Description:   "evening course",
	}, createdAt)
	require.NoError(t, err)
	return o
}
