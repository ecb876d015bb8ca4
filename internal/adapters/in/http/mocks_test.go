package http_test

import (
	"context"

	"fnbpos/internal/core/application/usecases/commands"
	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order, items order.LineItems) error {
	args := m.Called(ctx, o, items)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) ReplaceLineItems(ctx context.Context, orderID kernel.UUID, items order.LineItems) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, order.LineItems, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	items, _ := args.Get(1).(order.LineItems)
	return o, items, args.Error(2)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCapabilityProbe struct{ mock.Mock }

func (m *MockCapabilityProbe) Probe(ctx context.Context) (fnb.Capabilities, error) {
	args := m.Called(ctx)
	return args.Get(0).(fnb.Capabilities), args.Error(1)
}
