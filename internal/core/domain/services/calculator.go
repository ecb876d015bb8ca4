package services

import (
	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
)

// RateTax is the VAT of one bucket.
type RateTax struct {
	Rate          kernel.VATRate `json:"vatRate"`
	TaxableAmount float64        `json:"taxableAmount"`
	TaxAmount     float64        `json:"taxAmount"`
}

// Summary is the financial summary of an order. Amounts are whole dong in
// float64 and are never rounded here; round with kernel.RoundVND when
// presenting them.
type Summary struct {
	GoodsAmount    float64   `json:"goodsAmount"`
	TaxAmount      float64   `json:"taxAmount"`
	DiscountAmount float64   `json:"discountAmount"`
	VoucherAmount  float64   `json:"voucherAmount"`
	PayableAmount  float64   `json:"payableAmount"`
	Taxes          []RateTax `json:"taxes"`
}

// FinancialCalculator computes goods, VAT, discount and payable amounts.
// It is a pure function of its arguments.
type FinancialCalculator struct{}

// NewFinancialCalculator creates a new FinancialCalculator instance.
func NewFinancialCalculator() FinancialCalculator {
	return FinancialCalculator{}
}

// Summarize computes the summary of o with the given line items. A nil voucher
// falls back to o.Voucher.
//
// Definitions:
//   - goods is the sum of pre-tax line totals, whatever PriceIncludesVAT says
//   - tax is the sum of VATFor over the buckets minus the voucher VAT component,
//     and zero for exempt orders
//   - payable is the sum of VAT-inclusive line totals minus the discount and
//     the voucher after-VAT total
//
// Lines at a rate outside the buckets add to goods and payable but carry no tax.
func (c FinancialCalculator) Summarize(o order.Order, items order.LineItems, voucher *order.Voucher) Summary {
	if voucher == nil {
		voucher = o.Voucher
	}

	discount := c.DiscountAmount(o, items)
	summary := Summary{
		DiscountAmount: discount,
		VoucherAmount:  voucher.AfterVATTotal(),
		Taxes:          make([]RateTax, 0, len(kernel.Buckets())),
	}

	var postTax float64
	for _, item := range items {
		summary.GoodsAmount += item.PreTaxTotal()
		postTax += item.PostTaxTotal(o.TaxMode)
	}

	for _, rate := range kernel.Buckets() {
		taxable, vat := c.vatFor(o, items, rate, discount)
		summary.Taxes = append(summary.Taxes, RateTax{Rate: rate, TaxableAmount: taxable, TaxAmount: vat})
		summary.TaxAmount += vat
	}
	if !o.TaxMode.IsExempt() {
		summary.TaxAmount -= voucher.VATComponent()
	}

	summary.PayableAmount = postTax - discount - summary.VoucherAmount
	return summary
}

// DiscountAmount returns the order-level discount. The base is the total of
// the lines at the discount's target rate: pre-tax totals, or VAT-inclusive
// totals when the order prices include VAT.
func (c FinancialCalculator) DiscountAmount(o order.Order, items order.LineItems) float64 {
	var base float64
	for _, item := range items {
		if item.Rate() != o.Discount.VATRateTarget {
			continue
		}
		if o.PriceIncludesVAT {
			base += item.PostTaxTotal(o.TaxMode)
		} else {
			base += item.PreTaxTotal()
		}
	}

	//nolint:exhaustive // none and unknown types discount nothing
	switch o.Discount.Type {
	case order.DiscountPercent:
		return base * o.Discount.Amount / 100
	case order.DiscountFixed:
		return o.Discount.Amount
	case order.DiscountTargetPrice:
		return base - o.Discount.Amount
	default:
		return 0
	}
}

// VATFor returns the VAT contributed by the lines at rate, after the share of
// the discount that targets rate.
func (c FinancialCalculator) VATFor(o order.Order, items order.LineItems, rate kernel.VATRate) float64 {
	_, vat := c.vatFor(o, items, rate, c.DiscountAmount(o, items))
	return vat
}

// vatFor returns the pre-tax taxable base and the VAT of one bucket.
func (c FinancialCalculator) vatFor(
	o order.Order,
	items order.LineItems,
	rate kernel.VATRate,
	discount float64,
) (taxable, vat float64) {
	if o.TaxMode.IsExempt() || !rate.IsKnown() {
		return 0, 0
	}

	var share float64
	if o.Discount.VATRateTarget == rate {
		share = discount
	}

	var preTax float64
	for _, item := range items {
		if item.Rate() != rate {
			continue
		}
		preTax += item.PreTaxTotal()
		if o.PriceIncludesVAT {
			vat += (item.UnitPriceInclVAT(o.TaxMode) - item.Price) * float64(item.Quantity)
		}
	}

	if o.PriceIncludesVAT {
		shareVAT := rate.VATOfGross(share)
		return preTax - (share - shareVAT), vat - shareVAT
	}

	taxable = preTax - share
	return taxable, rate.Of(taxable)
}
