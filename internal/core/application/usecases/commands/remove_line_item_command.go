package commands

import (
	"errors"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand drops a line from a saved order.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand validates both ids.
func NewRemoveLineItemCommand(orderID, lineItemID kernel.UUID) (RemoveLineItemCommand, error) {
	if err := errors.Join(orderID.Validate(), lineItemID.Validate()); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return RemoveLineItemCommand{
		orderID:    orderID,
		lineItemID: lineItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

func (c RemoveLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RemoveLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}
