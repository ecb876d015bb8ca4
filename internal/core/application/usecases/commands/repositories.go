// Package commands contains business operations that modify orders.
// Every handler follows the same pattern: validate the command, open a unit of
// work, re-read the canonical order, authorize the action, apply it, persist
// and commit.
package commands

import (
	"context"
	"time"

	"fnbpos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, items, err := uow.OrderRepository().Get(ctx, id)
	//   // ... authorize and apply
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// Clock returns the current time. Handlers take it as a dependency so that
// lifecycle timestamps are deterministic in tests.
type Clock func() time.Time
