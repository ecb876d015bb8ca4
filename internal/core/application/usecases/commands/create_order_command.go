package commands

import (
	"errors"

	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand saves a create-mode order, the "save" action of a draft
// that so far only existed in memory. With printKitchen set the lines are
// sent to the kitchen in the same transaction.
//
// Example:
//
//	draft := order.Order{ID: kernel.NewUUID(), Code: "DH0001", TaxMode: order.TaxModeStandard}
//	cmd, err := NewCreateOrderCommand(draft, items, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to save order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	draft        order.Order
	items        order.LineItems
	printKitchen bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the draft and its line items. Lifecycle
// timestamps on the draft are ignored: a saved draft always starts new.
// Lines go through LineItems.Add, so they need a positive quantity and
// distinct ids.
func NewCreateOrderCommand(draft order.Order, items order.LineItems, printKitchen bool) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		printKitchen: printKitchen,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraft(draft),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Draft returns the order to save.
func (c CreateOrderCommand) Draft() order.Order {
	return c.draft
}

// Items returns the line items to save.
func (c CreateOrderCommand) Items() order.LineItems {
	return c.items
}

// PrintKitchen reports whether the lines go to the kitchen on save.
func (c CreateOrderCommand) PrintKitchen() bool {
	return c.printKitchen
}

func (c *CreateOrderCommand) setDraft(draft order.Order) error {
	draft.ConfirmedAt = nil
	draft.SentAt = nil
	draft.ReceivedAt = nil
	draft.CancelledAt = nil

	if err := draft.Validate(); err != nil {
		return err
	}

	c.draft = draft
	return nil
}

func (c *CreateOrderCommand) setItems(items order.LineItems) error {
	var collected order.LineItems
	for _, item := range items {
		item.ConfirmedToKitchen = false

		next, err := collected.Add(item)
		if err != nil {
			return err
		}
		collected = next
	}

	c.items = collected
	return nil
}
