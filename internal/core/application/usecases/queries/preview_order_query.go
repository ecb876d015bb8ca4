package queries

import (
	"errors"

	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/domain/services"
	"fnbpos/internal/pkg/guard"
)

var ErrPreviewOrderQueryIsNotConstructed = errors.New(
	"PreviewOrderQuery must be created via NewPreviewOrderQuery constructor",
)

// PreviewOrderQuery evaluates an order that is only held by the client, such
// as a create-mode draft or an edited copy of a saved order. Nothing is read
// from or written to storage.
type PreviewOrderQuery struct { //nolint:recvcheck //using for validation
	draft           order.Order
	items           order.LineItems
	mode            services.Mode
	voucher         *order.Voucher
	allowAddProduct bool

	guard guard.ConstructorGuard
}

// NewPreviewOrderQuery creates a preview. A nil voucher falls back to the
// draft's own voucher. The mode is not checked here: an unknown mode simply
// permits no order-level action.
func NewPreviewOrderQuery(
	draft order.Order,
	items order.LineItems,
	mode services.Mode,
	voucher *order.Voucher,
	allowAddProduct bool,
) (PreviewOrderQuery, error) {
	var itemErr error
	for _, item := range items {
		if err := item.Validate(); err != nil {
			itemErr = err
			break
		}
	}

	if err := errors.Join(draft.Discount.Validate(), itemErr); err != nil {
		return PreviewOrderQuery{}, err
	}

	return PreviewOrderQuery{
		draft:           draft,
		items:           items,
		mode:            mode,
		voucher:         voucher,
		allowAddProduct: allowAddProduct,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrPreviewOrderQueryIsNotConstructed if validation fails.
func (q PreviewOrderQuery) Validate() error {
	return q.guard.Validate(ErrPreviewOrderQueryIsNotConstructed)
}
