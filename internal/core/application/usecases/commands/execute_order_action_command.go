package commands

import (
	"errors"
	"fmt"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/services"
	"fnbpos/internal/pkg/errs"
	"fnbpos/internal/pkg/guard"
)

var ErrExecuteOrderActionCommandIsNotConstructed = errors.New(
	"ExecuteOrderActionCommand must be created via NewExecuteOrderActionCommand constructor",
)

// ExecuteOrderActionCommand runs an order-level action on a saved order.
//
// Example:
//
//	cmd, err := NewExecuteOrderActionCommand(orderID, services.ActionSend)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ExecuteOrderActionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  services.Action

	guard guard.ConstructorGuard
}

// NewExecuteOrderActionCommand rejects unknown actions and product-level
// actions, which have their own commands.
func NewExecuteOrderActionCommand(orderID kernel.UUID, action services.Action) (ExecuteOrderActionCommand, error) {
	cmd := ExecuteOrderActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAction(action),
	); err != nil {
		return ExecuteOrderActionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExecuteOrderActionCommand) Validate() error {
	return c.guard.Validate(ErrExecuteOrderActionCommandIsNotConstructed)
}

// OrderID returns the order to act on.
func (c ExecuteOrderActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the action to execute.
func (c ExecuteOrderActionCommand) Action() services.Action {
	return c.action
}

func (c *ExecuteOrderActionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ExecuteOrderActionCommand) setAction(action services.Action) error {
	if !action.IsKnown() || action.IsProductLevel() {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid",
			fmt.Errorf("%q is not an order-level action", action))
	}

	c.action = action
	return nil
}
