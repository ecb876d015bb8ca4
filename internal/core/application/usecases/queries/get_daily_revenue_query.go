package queries

import (
	"errors"
	"time"

	"fnbpos/internal/pkg/errs"
	"fnbpos/internal/pkg/guard"
)

var ErrGetDailyRevenueQueryIsNotConstructed = errors.New(
	"GetDailyRevenueQuery must be created via NewGetDailyRevenueQuery constructor",
)

// GetDailyRevenueQuery sums the orders received (paid) during one calendar
// day. The day boundaries follow the location of the given time.
//
// Example:
//
//	query, err := NewGetDailyRevenueQuery(time.Now().AddDate(0, 0, -1))
//	if err != nil {
//	    return err
//	}
//	revenue, err := handler.Handle(ctx, query)
type GetDailyRevenueQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyRevenueQuery creates a query for the day containing day.
func NewGetDailyRevenueQuery(day time.Time) (GetDailyRevenueQuery, error) {
	if day.IsZero() {
		return GetDailyRevenueQuery{}, errs.NewValueIsRequiredError("day")
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return GetDailyRevenueQuery{
		from:  from,
		to:    from.AddDate(0, 0, 1),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailyRevenueQueryIsNotConstructed if validation fails.
func (q GetDailyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyRevenueQueryIsNotConstructed)
}

// Day returns the start of the queried day.
func (q GetDailyRevenueQuery) Day() time.Time {
	return q.from
}

// GetDailyRevenueQueryResponse holds the day's totals in whole dong.
type GetDailyRevenueQueryResponse struct {
	Day           time.Time `json:"day"`
	OrderCount    int64     `json:"orderCount"`
	GoodsAmount   int64     `json:"goodsAmount"`
	TaxAmount     int64     `json:"taxAmount"`
	PayableAmount int64     `json:"payableAmount"`
}
