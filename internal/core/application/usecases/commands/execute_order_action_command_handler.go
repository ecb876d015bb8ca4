package commands

import (
	"context"
	"time"

	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/domain/services"
	"fnbpos/internal/core/ports"
	"fnbpos/internal/pkg/errs"
)

// ExecuteOrderActionCommandHandler applies order-level actions. The order is
// re-read inside the transaction so the decision never uses stale state.
//
// Transitions:
//   - confirm stamps ConfirmedAt, keeping an earlier confirmation
//   - send stamps SentAt
//   - payment stamps ReceivedAt
//   - cancel stamps CancelledAt
//   - printKitchen flags every line as confirmed to the kitchen and confirms the order
//   - printTemporary changes nothing
//   - delete removes the order
type ExecuteOrderActionCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.ActionAuthorizer
	now        Clock
}

// NewExecuteOrderActionCommandHandler creates a handler for order actions.
func NewExecuteOrderActionCommandHandler(uowFactory OrderUoWFactory, now Clock) ExecuteOrderActionCommandHandler {
	return ExecuteOrderActionCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewActionAuthorizer(),
		now:        now,
	}
}

// Handle authorizes the action against the stored order in update mode and
// persists its effect. A rejection is returned as errs.ActionIsNotAllowedError.
func (h ExecuteOrderActionCommandHandler) Handle(ctx context.Context, cmd ExecuteOrderActionCommand) error {
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

	action := cmd.Action()
	if err = h.authorizer.CanExecute(*o, services.ModeUpdate, items, action).Err(); err != nil {
		return err
	}

	if err = h.apply(ctx, repo, o, items, action, h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h ExecuteOrderActionCommandHandler) apply(
	ctx context.Context,
	repo ports.OrderRepository,
	o *order.Order,
	items order.LineItems,
	action services.Action,
	now time.Time,
) error {
	var err error

	//nolint:exhaustive // save and product-level actions never pass authorization here
	switch action {
	case services.ActionDelete:
		return repo.Delete(ctx, o.ID)
	case services.ActionPrintTemporary:
		return nil
	case services.ActionPrintKitchen:
		if err = repo.ReplaceLineItems(ctx, o.ID, items.MarkConfirmedToKitchen()); err != nil {
			return err
		}
		err = o.MarkConfirmed(now)
	case services.ActionConfirm:
		err = o.MarkConfirmed(now)
	case services.ActionSend:
		err = o.MarkSent(now)
	case services.ActionPayment:
		err = o.MarkReceived(now)
	case services.ActionCancel:
		err = o.MarkCancelled(now)
	default:
		return errs.NewActionIsNotAllowedError(action.String(), "action has no effect on a saved order")
	}
	if err != nil {
		return err
	}

	return repo.Update(ctx, o)
}
