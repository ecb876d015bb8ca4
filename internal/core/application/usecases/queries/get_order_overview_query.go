package queries

import (
	"errors"

	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/pkg/guard"
)

var ErrGetOrderOverviewQueryIsNotConstructed = errors.New(
	"GetOrderOverviewQuery must be created via NewGetOrderOverviewQuery constructor",
)

// GetOrderOverviewQuery reads a saved order and evaluates it in update mode.
// The capabilities come from a fresh probe of the backend and are only passed
// through to the response.
//
// Example:
//
//	capabilities, err := probe.Probe(ctx)
//	if err != nil {
//	    return err
//	}
//	query, err := NewGetOrderOverviewQuery(orderID, capabilities, true)
//	if err != nil {
//	    return err
//	}
//	overview, err := handler.Handle(ctx, query)
type GetOrderOverviewQuery struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	capabilities    fnb.Capabilities
	allowAddProduct bool

	guard guard.ConstructorGuard
}

// NewGetOrderOverviewQuery creates a query for one order. allowAddProduct is
// the caller's own permission to add products; pass true when there is none.
func NewGetOrderOverviewQuery(
	orderID kernel.UUID,
	capabilities fnb.Capabilities,
	allowAddProduct bool,
) (GetOrderOverviewQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderOverviewQuery{}, err
	}

	return GetOrderOverviewQuery{
		orderID:         orderID,
		capabilities:    capabilities,
		allowAddProduct: allowAddProduct,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderOverviewQueryIsNotConstructed if validation fails.
func (q GetOrderOverviewQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderOverviewQueryIsNotConstructed)
}

func (q GetOrderOverviewQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderOverviewQuery) Capabilities() fnb.Capabilities {
	return q.capabilities
}

func (q GetOrderOverviewQuery) AllowAddProduct() bool {
	return q.allowAddProduct
}

// GetOrderOverviewQueryResponse is the order view plus the probed capabilities.
type GetOrderOverviewQueryResponse struct {
	OrderView

	Capabilities fnb.Capabilities `json:"capabilities"`
}
