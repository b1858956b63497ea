package commands_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
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

func (m *MockOrderRepository) GetAll(ctx context.Context, cancelled *bool, limit *int) ([]*order.Order, error) {
	args := m.Called(ctx, cancelled, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInCreatedStatusBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUnitOfWorkFactory struct{ mock.Mock }

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

func mustItem(t *testing.T, product string, size order.Size, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(product, size, quantity)
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(kernel.NewUUID(), time.Now().UTC(), status,
		[]order.Item{mustItem(t, "latte", order.Small, 1)})
	require.NoError(t, err)
	return aggregate
}
