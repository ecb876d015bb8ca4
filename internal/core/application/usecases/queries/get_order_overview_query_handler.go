package queries

import (
	"context"

	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/domain/services"
)

// OrderReader loads an order with its line items. ports.OrderRepository
// satisfies it.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, order.LineItems, error)
}

// GetOrderOverviewQueryHandler evaluates a saved order.
//
// Example:
//
//	handler := NewGetOrderOverviewQueryHandler(orderrepo.NewGormOrderRepository(db), cfg)
//	overview, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type GetOrderOverviewQueryHandler struct {
	reader OrderReader
	cfg    fnb.Config
}

// NewGetOrderOverviewQueryHandler creates a handler that reads orders from
// reader and labels actions for cfg.
func NewGetOrderOverviewQueryHandler(reader OrderReader, cfg fnb.Config) GetOrderOverviewQueryHandler {
	return GetOrderOverviewQueryHandler{reader: reader, cfg: cfg}
}

// Handle reads the order on every call and evaluates it in update mode with
// the order's own voucher.
func (h GetOrderOverviewQueryHandler) Handle(
	ctx context.Context,
	query GetOrderOverviewQuery,
) (GetOrderOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderOverviewQueryResponse{}, err
	}

	o, items, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderOverviewQueryResponse{}, err
	}

	return GetOrderOverviewQueryResponse{
		OrderView:    buildOrderView(h.cfg, *o, items, services.ModeUpdate, nil, query.AllowAddProduct()),
		Capabilities: query.Capabilities(),
	}, nil
}
