package commands

import (
	"errors"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand adds a product line to a saved order. AllowAddProduct is
// the merchant-level override; pass true when there is none.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	item            order.LineItem
	allowAddProduct bool

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand validates the order id and the new line.
func NewAddLineItemCommand(orderID kernel.UUID, item order.LineItem, allowAddProduct bool) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		allowAddProduct: allowAddProduct,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItem(item),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the order to change.
func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Item returns the line to add.
func (c AddLineItemCommand) Item() order.LineItem {
	return c.item
}

// AllowAddProduct returns the merchant-level override.
func (c AddLineItemCommand) AllowAddProduct() bool {
	return c.allowAddProduct
}

func (c *AddLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setItem(item order.LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	item.ConfirmedToKitchen = false
	c.item = item
	return nil
}
