package commands

import (
	"context"

	"fnbpos/internal/core/domain/services"
	"fnbpos/internal/pkg/errs"
)

// ChangeLineItemQuantityCommandHandler changes the quantity of a line on a
// saved order.
type ChangeLineItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.ActionAuthorizer
}

// NewChangeLineItemQuantityCommandHandler creates a handler for quantity changes.
func NewChangeLineItemQuantityCommandHandler(uowFactory OrderUoWFactory) ChangeLineItemQuantityCommandHandler {
	return ChangeLineItemQuantityCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewActionAuthorizer(),
	}
}

// Handle checks updateQuantity on the line. When the change drops the line it
// is a removal, so removeProduct must be permitted as well.
func (h ChangeLineItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeLineItemQuantityCommand) error {
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

	verdict := h.authorizer.CanExecuteOnProduct(item, *o, services.ActionUpdateQuantity, cmd.AllowAddProduct())
	if err = verdict.Err(); err != nil {
		return err
	}

	changed, err := items.ChangeQuantity(cmd.LineItemID(), cmd.Value(), cmd.Mode())
	if err != nil {
		return err
	}

	if len(changed) < len(items) {
		verdict = h.authorizer.CanExecuteOnProduct(item, *o, services.ActionRemoveProduct, cmd.AllowAddProduct())
		if err = verdict.Err(); err != nil {
			return err
		}
	}

	if err = repo.ReplaceLineItems(ctx, o.ID, changed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
