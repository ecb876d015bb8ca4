package queries

import (
	"context"

	"fnbpos/internal/core/domain/model/fnb"
)

// PreviewOrderQueryHandler evaluates client-held orders.
type PreviewOrderQueryHandler struct {
	cfg fnb.Config
}

func NewPreviewOrderQueryHandler(cfg fnb.Config) PreviewOrderQueryHandler {
	return PreviewOrderQueryHandler{cfg: cfg}
}

// Handle returns the status, permitted actions and totals of the draft.
func (h PreviewOrderQueryHandler) Handle(_ context.Context, query PreviewOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	return buildOrderView(h.cfg, query.draft, query.items, query.mode, query.voucher, query.allowAddProduct), nil
}
