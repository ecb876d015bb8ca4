package queries

import (
	"errors"
	"time"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/guard"
)

var (
	ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
		"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
	)
)

// GetOpenOrdersQuery lists the orders that are neither completed nor
// cancelled, oldest first, for the floor staff's order board.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	handler := NewGetOpenOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s %d\n", o.Code, o.Status, o.PayableAmount)
//	}
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to list open orders.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenOrdersQueryIsNotConstructed if validation fails.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse is one row of the order board. PayableAmount is
// the stored snapshot, rounded to whole dong.
type GetOpenOrdersQueryResponse struct {
	ID            kernel.UUID  `json:"id"`
	Code          string       `json:"code"`
	CustomerName  string       `json:"customerName,omitempty"`
	Status        order.Status `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	PayableAmount int64        `json:"payableAmount"`
}
