package commands

import (
	"context"

	"fnbpos/internal/core/domain/services"
)

// AddLineItemCommandHandler appends a line to a saved order.
type AddLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.ActionAuthorizer
}

// NewAddLineItemCommandHandler creates a handler for adding products.
func NewAddLineItemCommandHandler(uowFactory OrderUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewActionAuthorizer(),
	}
}

// Handle re-reads the order, checks addProduct and stores the grown collection.
func (h AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, items, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	verdict := h.authorizer.CanExecuteOnProduct(cmd.Item(), *o, services.ActionAddProduct, cmd.AllowAddProduct())
	if err = verdict.Err(); err != nil {
		return err
	}

	changed, err := items.Add(cmd.Item())
	if err != nil {
		return err
	}

	if err = repo.ReplaceLineItems(ctx, o.ID, changed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
