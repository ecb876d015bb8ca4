package commands_test

import (
	"testing"

	"fnbpos/internal/core/application/usecases/commands"
	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/domain/services"
	"fnbpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewLineItemCommands_Validation(t *testing.T) {
	t.Run("add requires a valid line", func(t *testing.T) {
		item := newLine(25000, 1)
		item.ProductID = kernel.UUID{}

		_, err := commands.NewAddLineItemCommand(kernel.NewUUID(), item, true)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("change requires a known quantity mode", func(t *testing.T) {
		_, err := commands.NewChangeLineItemQuantityCommand(kernel.NewUUID(), kernel.NewUUID(), 1, "double", true)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("remove requires both ids", func(t *testing.T) {
		_, err := commands.NewRemoveLineItemCommand(kernel.NewUUID(), kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero values are not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.AddLineItemCommand{}.Validate(), commands.ErrAddLineItemCommandIsNotConstructed)
		require.ErrorIs(t, commands.ChangeLineItemQuantityCommand{}.Validate(),
			commands.ErrChangeLineItemQuantityCommandIsNotConstructed)
		require.ErrorIs(t, commands.RemoveLineItemCommand{}.Validate(), commands.ErrRemoveLineItemCommandIsNotConstructed)
	})
}

func TestAddLineItemCommandHandler_Handle(t *testing.T) {
	t.Run("should append the line", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		item := newLine(15000, 3)
		cmd, _ := commands.NewAddLineItemCommand(o.ID, item, true)
		expected, _ := items.Add(item)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		repo.On("ReplaceLineItems", mock.Anything, o.ID, expected).Return(nil).Once()
		factory, uow := expectTransaction(repo, true)

		h := commands.NewAddLineItemCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should refuse once sent without auto deduction", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		o.SentAt = ptr(now)
		cmd, _ := commands.NewAddLineItemCommand(o.ID, newLine(15000, 1), true)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		factory, uow := expectTransaction(repo, false)

		h := commands.NewAddLineItemCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		var notAllowed *errs.ActionIsNotAllowedError
		require.ErrorAs(t, err, &notAllowed)
		assert.Equal(t, services.ReasonProductsLocked, notAllowed.Reason)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should accept once sent with auto deduction", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		o.SentAt = ptr(now)
		o.AutoDeductInventoryOnSend = true
		cmd, _ := commands.NewAddLineItemCommand(o.ID, newLine(15000, 1), true)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		repo.On("ReplaceLineItems", mock.Anything, o.ID, mock.Anything).Return(nil).Once()
		factory, uow := expectTransaction(repo, true)

		h := commands.NewAddLineItemCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		uow.AssertExpectations(t)
	})
}

func TestChangeLineItemQuantityCommandHandler_Handle(t *testing.T) {
	t.Run("should set an absolute quantity", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		cmd, _ := commands.NewChangeLineItemQuantityCommand(o.ID, items[0].ID, 5, order.QuantityAbsolute, true)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		repo.On("ReplaceLineItems", mock.Anything, o.ID, mock.MatchedBy(func(changed order.LineItems) bool {
			return len(changed) == 2 && changed[0].Quantity == 5
		})).Return(nil).Once()
		factory, uow := expectTransaction(repo, true)

		h := commands.NewChangeLineItemQuantityCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should remove the line when the delta reaches zero", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		cmd, _ := commands.NewChangeLineItemQuantityCommand(o.ID, items[1].ID, -1, order.QuantityDelta, true)
		expected, _ := items.Remove(items[1].ID)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		repo.On("ReplaceLineItems", mock.Anything, o.ID, expected).Return(nil).Once()
		factory, _ := expectTransaction(repo, true)

		h := commands.NewChangeLineItemQuantityCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
	})

	t.Run("should not drop a line confirmed to the kitchen", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		items = items.MarkConfirmedToKitchen()
		cmd, _ := commands.NewChangeLineItemQuantityCommand(o.ID, items[1].ID, 0, order.QuantityAbsolute, true)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		factory, _ := expectTransaction(repo, false)

		h := commands.NewChangeLineItemQuantityCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		var notAllowed *errs.ActionIsNotAllowedError
		require.ErrorAs(t, err, &notAllowed)
		assert.Equal(t, services.ReasonProductConfirmed, notAllowed.Reason)
		repo.AssertNotCalled(t, "ReplaceLineItems", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should report an unknown line", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		cmd, _ := commands.NewChangeLineItemQuantityCommand(o.ID, kernel.NewUUID(), 1, order.QuantityDelta, true)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		factory, _ := expectTransaction(repo, false)

		h := commands.NewChangeLineItemQuantityCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})
}

func TestRemoveLineItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove an unconfirmed line", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		cmd, _ := commands.NewRemoveLineItemCommand(o.ID, items[0].ID)
		expected, _ := items.Remove(items[0].ID)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		repo.On("ReplaceLineItems", mock.Anything, o.ID, expected).Return(nil).Once()
		factory, uow := expectTransaction(repo, true)

		h := commands.NewRemoveLineItemCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should refuse on a cancelled order", func(t *testing.T) {
		ctx := t.Context()
		o, items := savedOrder()
		o.CancelledAt = ptr(now)
		cmd, _ := commands.NewRemoveLineItemCommand(o.ID, items[0].ID)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, o.ID).Return(o, items, nil).Once()
		factory, _ := expectTransaction(repo, false)

		h := commands.NewRemoveLineItemCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		var notAllowed *errs.ActionIsNotAllowedError
		require.ErrorAs(t, err, &notAllowed)
		assert.Equal(t, services.ReasonCancelled, notAllowed.Reason)
	})
}
