package commands

import (
	"errors"
	"fmt"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/errs"
	"fnbpos/internal/pkg/guard"
)

var ErrChangeLineItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeLineItemQuantityCommand must be created via NewChangeLineItemQuantityCommand constructor",
)

// ChangeLineItemQuantityCommand sets or adjusts the quantity of a line.
// A resulting quantity of zero or less removes the line.
//
// Example:
//
//	// one less coffee
//	cmd, err := NewChangeLineItemQuantityCommand(orderID, lineID, -1, order.QuantityDelta, true)
type ChangeLineItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	lineItemID      kernel.UUID
	value           int
	mode            order.QuantityMode
	allowAddProduct bool

	guard guard.ConstructorGuard
}

// NewChangeLineItemQuantityCommand validates ids and the quantity mode.
func NewChangeLineItemQuantityCommand(
	orderID kernel.UUID,
	lineItemID kernel.UUID,
	value int,
	mode order.QuantityMode,
	allowAddProduct bool,
) (ChangeLineItemQuantityCommand, error) {
	cmd := ChangeLineItemQuantityCommand{
		value:           value,
		allowAddProduct: allowAddProduct,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		lineItemID.Validate(),
		cmd.setMode(mode),
	); err != nil {
		return ChangeLineItemQuantityCommand{}, err
	}

	cmd.orderID = orderID
	cmd.lineItemID = lineItemID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeLineItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeLineItemQuantityCommandIsNotConstructed)
}

func (c ChangeLineItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeLineItemQuantityCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c ChangeLineItemQuantityCommand) Value() int {
	return c.value
}

func (c ChangeLineItemQuantityCommand) Mode() order.QuantityMode {
	return c.mode
}

func (c ChangeLineItemQuantityCommand) AllowAddProduct() bool {
	return c.allowAddProduct
}

func (c *ChangeLineItemQuantityCommand) setMode(mode order.QuantityMode) error {
	if mode != order.QuantityAbsolute && mode != order.QuantityDelta {
		return errs.NewValueIsInvalidErrorWithCause("quantity mode is invalid",
			fmt.Errorf("%q is not absolute or delta", mode))
	}

	c.mode = mode
	return nil
}
