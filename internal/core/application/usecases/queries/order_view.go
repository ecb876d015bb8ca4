package queries

import (
	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/domain/services"
)

// LineView is one line item with its VAT-inclusive total and the product
// buttons a client may show for it.
type LineView struct {
	order.LineItem

	UnitPriceInclVAT float64            `json:"unitPriceInclVat"`
	PostTaxTotal     float64            `json:"postTaxTotal"`
	Buttons          services.ActionSet `json:"buttons"`
}

// Totals is the summary rounded to whole dong for display.
type Totals struct {
	GoodsAmount    int64 `json:"goodsAmount"`
	TaxAmount      int64 `json:"taxAmount"`
	DiscountAmount int64 `json:"discountAmount"`
	VoucherAmount  int64 `json:"voucherAmount"`
	PayableAmount  int64 `json:"payableAmount"`
}

// OrderView is everything a client needs to render an order: its derived
// status, the permitted actions with their labels, the lines and the totals.
type OrderView struct {
	Order   order.Order                `json:"order"`
	Status  order.Status               `json:"status"`
	CanAdd  bool                       `json:"canAddProduct"`
	Actions services.ActionSet         `json:"actions"`
	Labels  map[services.Action]string `json:"labels"`
	Lines   []LineView                 `json:"lines"`
	Summary services.Summary           `json:"summary"`
	Totals  Totals                     `json:"totals"`
}

// buildOrderView is shared by the overview and the preview. o and items must
// be the latest known state; nothing here is cached.
func buildOrderView(
	cfg fnb.Config,
	o order.Order,
	items order.LineItems,
	mode services.Mode,
	voucher *order.Voucher,
	allowAddProduct bool,
) OrderView {
	authorizer := services.NewActionAuthorizer()
	summary := services.NewFinancialCalculator().Summarize(o, items, voucher)
	actions := authorizer.PermittedActions(o, mode, items)

	labels := make(map[services.Action]string, len(actions.Actions()))
	for _, a := range actions.Actions() {
		labels[a] = services.ActionLabel(cfg, a)
	}

	lines := make([]LineView, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineView{
			LineItem:         item,
			UnitPriceInclVAT: item.UnitPriceInclVAT(o.TaxMode),
			PostTaxTotal:     item.PostTaxTotal(o.TaxMode),
			Buttons:          authorizer.ProductButtonVisibility(item, o, allowAddProduct),
		})
	}

	return OrderView{
		Order:   o,
		Status:  o.Status(),
		CanAdd:  authorizer.CanAddProduct(o, allowAddProduct),
		Actions: actions,
		Labels:  labels,
		Lines:   lines,
		Summary: summary,
		Totals: Totals{
			GoodsAmount:    kernel.RoundVND(summary.GoodsAmount),
			TaxAmount:      kernel.RoundVND(summary.TaxAmount),
			DiscountAmount: kernel.RoundVND(summary.DiscountAmount),
			VoucherAmount:  kernel.RoundVND(summary.VoucherAmount),
			PayableAmount:  kernel.RoundVND(summary.PayableAmount),
		},
	}
}
