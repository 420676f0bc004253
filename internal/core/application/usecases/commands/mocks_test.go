package commands_test

import (
	"context"
	"testing"
	"time"

	"salesdesk/internal/core/application/notifications"
	"salesdesk/internal/core/application/usecases/commands"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/order"
	"salesdesk/internal/core/domain/model/user"
	"salesdesk/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*user.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event notifications.Event) {
	m.Called(ctx, event)
}

// fixture bundles a unit of work whose repositories are always available.
type fixture struct {
	orders    *MockOrderRepository
	users     *MockUserRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	publisher *MockPublisher
}

func newFixture() *fixture {
	f := &fixture{
		orders:    new(MockOrderRepository),
		users:     new(MockUserRepository),
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		publisher: new(MockPublisher),
	}
	f.factory.On("Create").Return(f.uow).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("UserRepository").Return(f.users).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func newPrincipal(t *testing.T, role kernel.Role) kernel.Principal {
	t.Helper()
	p, err := kernel.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func newUser(t *testing.T, id kernel.UUID, name string, role kernel.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(id, name, role)
	require.NoError(t, err)
	return u
}

func newStoredOrder(t *testing.T) *order.Order {
	t.Helper()
	contact, _ := order.NewContact("0500000000", "Ali")
	slot, _ := kernel.ParseSlot("2024-01-01", "10:00")
	o, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Kind:          order.KindUSB,
		Price:         decimal.NewFromInt(100),
		Contact:       contact,
		ScheduledTime: slot,
		Description:   "x",
	}, now.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func validInput() commands.CreateOrderInput {
	return commands.CreateOrderInput{
		Kind:        "usb",
		Price:       decimal.NewFromInt(100),
		PhoneNumber: "0500000000",
		FullName:    "Ali",
		Day:         "2024-01-01",
		Hour:        "10:00",
		Description: "x",
	}
}

func eventOfKind(kind notifications.Kind) any {
	return mock.MatchedBy(func(e notifications.Event) bool {
		return e.Type == notifications.MessageTypeNotification && e.Notification.Type == kind
	})
}

func confirmationStatus(s order.ConfirmationStatus) *order.ConfirmationStatus {
	return &s
}
