package kernel

import (
	"fmt"

	"fnbpos/internal/pkg/errs"
)

// VATRate is a value-added tax rate in whole percent. Only the buckets
// returned by Buckets carry tax; any other value is kept as data but
// treated as contributing no tax.
type VATRate int

const (
	VAT0  VATRate = 0
	VAT5  VATRate = 5
	VAT8  VATRate = 8
	VAT10 VATRate = 10
)

// Buckets lists the VAT rates the financial calculator aggregates over,
// in ascending order.
func Buckets() []VATRate {
	return []VATRate{VAT0, VAT5, VAT8, VAT10}
}

// NewVATRate validates percent against the known buckets.
//
// Example:
//
//	rate, err := kernel.NewVATRate(8)
//	if err != nil {
//	    // 8 is a bucket, so err is nil here
//	}
func NewVATRate(percent int) (VATRate, error) {
	rate := VATRate(percent)
	if err := rate.Validate(); err != nil {
		return VAT0, err
	}
	return rate, nil
}

// IsKnown reports whether the rate is one of Buckets.
func (r VATRate) IsKnown() bool {
	switch r {
	case VAT0, VAT5, VAT8, VAT10:
		return true
	default:
		return false
	}
}

// Validate rejects rates outside the known buckets.
func (r VATRate) Validate() error {
	if !r.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause(
			"vat rate is invalid",
			fmt.Errorf("%d%% is not one of 0%%, 5%%, 8%%, 10%%", int(r)),
		)
	}
	return nil
}

// Fraction returns the rate as a multiplier, e.g. 0.1 for VAT10.
func (r VATRate) Fraction() float64 {
	return float64(r) / 100
}

// Of returns this rate's VAT on a pre-tax amount.
func (r VATRate) Of(net float64) float64 {
	return net * float64(r) / 100
}

// Gross adds this rate's VAT to a pre-tax amount.
func (r VATRate) Gross(net float64) float64 {
	return net + r.Of(net)
}

// VATOfGross extracts the VAT component of a VAT-inclusive amount.
func (r VATRate) VATOfGross(gross float64) float64 {
	return gross - gross/(1+r.Fraction())
}

func (r VATRate) String() string {
	return fmt.Sprintf("%d%%", int(r))
}
