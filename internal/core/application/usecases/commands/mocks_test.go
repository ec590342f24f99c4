package commands_test

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/ordertable"
	"kitchenpos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByTableAndStatusNot(ctx context.Context, tableID kernel.UUID, status order.Status) (bool, error) {
	args := m.Called(ctx, tableID, status)
	return args.Bool(0), args.Error(1)
}

type MockOrderTableRepository struct{ mock.Mock }

func (m *MockOrderTableRepository) Add(ctx context.Context, t *ordertable.OrderTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Update(ctx context.Context, t *ordertable.OrderTable) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockOrderTableRepository) Get(ctx context.Context, id kernel.UUID) (*ordertable.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordertable.OrderTable), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Save(ctx context.Context, menu *menu.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.Menu), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) Delete(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
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

func (m *MockUoW) OrderTableRepository() ports.OrderTableRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderTableRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

// MockFactory hands out a unit of work of type T.
type MockFactory[T any] struct{ mock.Mock }

func (m *MockFactory[T]) Create() T {
	args := m.Called()
	return args.Get(0).(T)
}

type MockDeliveryClient struct{ mock.Mock }

func (m *MockDeliveryClient) RequestDelivery(ctx context.Context, orderID kernel.UUID, address string, totalPrice decimal.Decimal) error {
	args := m.Called(ctx, orderID, address, totalPrice)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, name string, payload []byte) error {
	args := m.Called(ctx, name, payload)
	return args.Error(0)
}
