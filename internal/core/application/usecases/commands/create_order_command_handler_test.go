package commands_test

import (
	"errors"
	"testing"

	"fnbpos/internal/core/application/usecases/commands"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(newDraft(), order.LineItems{newLine(25000, 2)}, false)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.CreatedAt.Equal(now) && o.Status() == order.New
	}), cmd.Items()).Return(nil).Once()
	factory, uow := expectTransaction(repo, true)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PrintKitchen(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(newDraft(), order.LineItems{newLine(25000, 2)}, true)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything,
		mock.MatchedBy(func(o *order.Order) bool { return o.Status() == order.Confirmed }),
		mock.MatchedBy(func(items order.LineItems) bool { return !items.HasUnconfirmed() }),
	).Return(nil).Once()
	factory, uow := expectTransaction(repo, true)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoProducts(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(newDraft(), nil, false)
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrActionIsNotAllowed)
	var notAllowed *errs.ActionIsNotAllowedError
	require.ErrorAs(t, err, &notAllowed)
	assert.Equal(t, "save", notAllowed.Action)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(newDraft(), order.LineItems{newLine(25000, 2)}, false)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(newDraft(), order.LineItems{newLine(25000, 2)}, false)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("add error")).Once()
	factory, uow := expectTransaction(repo, false)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(newDraft(), order.LineItems{newLine(25000, 2)}, false)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
