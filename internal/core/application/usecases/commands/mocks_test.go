package commands_test

import (
	"context"
	"time"

	"fnbpos/internal/core/application/usecases/commands"
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

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return now
}

func ptr[T any](v T) *T {
	return &v
}

func newLine(price float64, quantity int) order.LineItem {
	return order.LineItem{
		ID:        kernel.NewUUID(),
		ProductID: kernel.NewUUID(),
		Name:      "Ca phe sua",
		Quantity:  quantity,
		Price:     price,
		VATRate:   ptr(kernel.VAT8),
	}
}

func newDraft() order.Order {
	return order.Order{
		ID:      kernel.NewUUID(),
		Code:    "DH0001",
		TaxMode: order.TaxModeStandard,
	}
}

// expectTransaction wires a factory and unit of work that hand out repo and
// expect a begin, an optional commit and the deferred rollback.
func expectTransaction(repo *MockOrderRepository, commit bool) (*MockOrderUoWFactory, *MockOrderUoW) {
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	if commit {
		uow.On("Commit", mock.Anything).Return(nil).Once()
	}
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}
