package commands

import (
	"context"

	"fnbpos/internal/core/domain/services"
	"fnbpos/internal/pkg/errs"
)

// RemoveLineItemCommandHandler drops a line that has not gone to the kitchen.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.ActionAuthorizer
}

// NewRemoveLineItemCommandHandler creates a handler for removing products.
func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewActionAuthorizer(),
	}
}

// Handle re-reads the order, checks removeProduct on the line and stores the
// remaining collection.
func (h RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
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

	item, ok := items.Find(cmd.LineItemID())
	if !ok {
		return errs.NewObjectNotFoundError("lineItemId", cmd.LineItemID().String())
	}

	if err = h.authorizer.CanExecuteOnProduct(item, *o, services.ActionRemoveProduct, true).Err(); err != nil {
		return err
	}

	changed, err := items.Remove(cmd.LineItemID())
	if err != nil {
		return err
	}

	if err = repo.ReplaceLineItems(ctx, o.ID, changed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
