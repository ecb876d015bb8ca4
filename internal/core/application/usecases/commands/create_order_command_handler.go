package commands

import (
	"context"

	"fnbpos/internal/core/domain/services"
)

// CreateOrderCommandHandler persists a create-mode order after checking that
// the draft may be saved.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrActionIsNotAllowed) {
//	    // the draft has no products
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.ActionAuthorizer
	now        Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewActionAuthorizer(),
		now:        now,
	}
}

// Handle authorizes save (and printKitchen when requested) in create mode,
// stamps CreatedAt and stores the order with its lines in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	draft, items := cmd.Draft(), cmd.Items()
	if err := h.authorizer.CanExecute(draft, services.ModeCreate, items, services.ActionSave).Err(); err != nil {
		return err
	}

	now := h.now()
	draft.CreatedAt = now

	if cmd.PrintKitchen() {
		verdict := h.authorizer.CanExecute(draft, services.ModeCreate, items, services.ActionPrintKitchen)
		if err := verdict.Err(); err != nil {
			return err
		}
		items = items.MarkConfirmedToKitchen()
		if err := draft.MarkConfirmed(now); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, &draft, items); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
