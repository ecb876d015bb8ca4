// Package fnb describes the merchant-level F&B configuration the engine is
// given as read-only context.
package fnb

import (
	"fmt"

	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/errs"
)

// PaymentMode tells when F&B guests pay.
type PaymentMode string

const (
	PayAtCounter PaymentMode = "payAtCounter"
	PayAtTable   PaymentMode = "payAtTable"
)

// Config is the F&B configuration of a branch. It only changes labels; the
// authorization and financial rules do not read it.
type Config struct {
	BusinessType string        `json:"businessType"`
	PaymentMode  PaymentMode   `json:"fnbPaymentMode"`
	TaxMode      order.TaxMode `json:"taxMode"`
}

// NewConfig validates the payment and tax modes. Empty values fall back to
// pay-at-table and standard tax.
func NewConfig(businessType string, paymentMode PaymentMode, taxMode order.TaxMode) (Config, error) {
	if paymentMode == "" {
		paymentMode = PayAtTable
	}
	if taxMode == "" {
		taxMode = order.TaxModeStandard
	}

	if paymentMode != PayAtCounter && paymentMode != PayAtTable {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("payment mode is invalid",
			fmt.Errorf("%q is not payAtCounter or payAtTable", paymentMode))
	}
	if taxMode != order.TaxModeStandard && taxMode != order.TaxModeExempt {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("tax mode is invalid",
			fmt.Errorf("%q is not standard or exempt", taxMode))
	}

	return Config{
		BusinessType: businessType,
		PaymentMode:  paymentMode,
		TaxMode:      taxMode,
	}, nil
}

// SendCompletesOrder reports whether sending an order is presented as
// completing it, which is the case when guests pay at the counter.
func (c Config) SendCompletesOrder() bool {
	return c.PaymentMode == PayAtCounter
}

// Capabilities is the result of probing what the backend offers. It is
// returned by a probe and passed along as a parameter; nothing caches it.
type Capabilities struct {
	// BranchAPI is true when the per-branch order endpoints are available.
	BranchAPI bool `json:"branchApi"`
}
