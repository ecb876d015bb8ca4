package order

import "fnbpos/internal/core/domain/model/kernel"

// VoucherDetail is the part of a voucher applied to one VAT bucket.
type VoucherDetail struct {
	VATRate           kernel.VATRate `json:"vatRate"`
	DiscountBeforeVAT float64        `json:"discountBeforeVat"`
	DiscountAfterVAT  float64        `json:"discountAfterVat"`
}

// Voucher is an externally issued discount. It only reduces aggregate totals
// and never changes line items.
type Voucher struct {
	Code    string          `json:"code,omitempty"`
	Details []VoucherDetail `json:"details"`
}

// AfterVATTotal sums the VAT-inclusive discount of every detail. Nil-safe.
func (v *Voucher) AfterVATTotal() float64 {
	if v == nil {
		return 0
	}
	var total float64
	for _, d := range v.Details {
		total += d.DiscountAfterVAT
	}
	return total
}

// VATComponent sums the VAT share of the voucher (after minus before). Nil-safe.
func (v *Voucher) VATComponent() float64 {
	if v == nil {
		return 0
	}
	var total float64
	for _, d := range v.Details {
		total += d.DiscountAfterVAT - d.DiscountBeforeVAT
	}
	return total
}
