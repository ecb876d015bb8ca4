// Package ports defines the contracts between the order engine and the
// infrastructure that stores orders and probes backend capabilities.
package ports

import (
	"context"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders and their line
// items. It is the canonical source every authorization decision re-reads.
type OrderRepository interface {
	// Add persists a new order with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order, items order.LineItems) error

	// Update persists the order record. Line items are left untouched.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceLineItems stores items as the complete line-item collection of the
	// order, the result of a pure mutation applied by the caller.
	ReplaceLineItems(ctx context.Context, orderID kernel.UUID, items order.LineItems) error

	// Get retrieves an order and its line items by the order identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, order.LineItems, error)

	// Delete removes an order and its line items.
	Delete(ctx context.Context, id kernel.UUID) error
}
