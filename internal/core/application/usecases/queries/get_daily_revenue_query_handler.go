package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDailyRevenueQueryHandler aggregates the stored totals snapshot.
type GetDailyRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyRevenueQueryHandler creates a handler for daily revenue queries.
func NewGetDailyRevenueQueryHandler(db *gorm.DB) GetDailyRevenueQueryHandler {
	return GetDailyRevenueQueryHandler{db: db}
}

// Handle counts and sums the completed orders whose received_at falls in the
// day. Cancelled orders never count.
func (h GetDailyRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetDailyRevenueQuery,
) (GetDailyRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}

	resp := GetDailyRevenueQueryResponse{Day: query.from}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(goods_amount), 0)::bigint,
			COALESCE(SUM(tax_amount), 0)::bigint,
			COALESCE(SUM(payable_amount), 0)::bigint
		FROM orders
		WHERE received_at >= ? AND received_at < ? AND cancelled_at IS NULL
	`, query.from, query.to).Row()

	err := row.Scan(
		&resp.OrderCount,
		&resp.GoodsAmount,
		&resp.TaxAmount,
		&resp.PayableAmount,
	)
	if err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}

	return resp, nil
}
