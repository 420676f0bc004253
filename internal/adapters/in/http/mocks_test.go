package http_test

import (
	"context"

	"salesdesk/internal/core/application/usecases/commands"
	"salesdesk/internal/core/application/usecases/queries"
	"salesdesk/internal/core/application/views"
	"salesdesk/internal/core/domain/model/kernel"
	"salesdesk/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
)

type MockOrderCreator struct {
	mock.Mock
}

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (views.OrderView, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.OrderView), args.Error(1)
}

type MockConfirmationUpdater struct {
	mock.Mock
}

func (m *MockConfirmationUpdater) Handle(
	ctx context.Context,
	cmd commands.UpdateConfirmationCommand,
) (views.OrderView, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.OrderView), args.Error(1)
}

type MockFulfillmentUpdater struct {
	mock.Mock
}

func (m *MockFulfillmentUpdater) Handle(
	ctx context.Context,
	cmd commands.UpdateFulfillmentCommand,
) (views.OrderView, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(views.OrderView), args.Error(1)
}

type MockOrderDeleter struct {
	mock.Mock
}

func (m *MockOrderDeleter) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *MockOrderDeleter) HandleAll(ctx context.Context, cmd commands.DeleteAllOrdersCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderGetter struct {
	mock.Mock
}

func (m *MockOrderGetter) Handle(ctx context.Context, query queries.GetOrderQuery) (views.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(views.OrderView), args.Error(1)
}

type MockOrderLister struct {
	mock.Mock
}

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]views.OrderView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]views.OrderView), args.Error(1)
}

type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
