package order

import (
	"errors"
	"fmt"
	"time"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/pkg/errs"
)

// TaxMode tells whether the merchant charges VAT at all.
type TaxMode string

const (
	TaxModeStandard TaxMode = "standard"
	TaxModeExempt   TaxMode = "exempt"
)

// IsExempt reports whether every tax computation short-circuits to zero.
// Any value other than TaxModeExempt, including empty, is standard.
func (m TaxMode) IsExempt() bool {
	return m == TaxModeExempt
}

// DiscountType selects how Discount.Amount is interpreted.
type DiscountType string

const (
	DiscountNone DiscountType = "none"
	// DiscountPercent takes Amount percent off the targeted lines.
	DiscountPercent DiscountType = "percent"
	// DiscountFixed takes Amount off.
	DiscountFixed DiscountType = "fixed"
	// DiscountTargetPrice lowers the targeted lines' total to Amount.
	DiscountTargetPrice DiscountType = "targetPrice"
)

// Discount is the single order-level discount. It applies only to lines whose
// VAT rate equals VATRateTarget.
type Discount struct {
	Type          DiscountType   `json:"type"`
	Amount        float64        `json:"amount"`
	VATRateTarget kernel.VATRate `json:"vatRateTarget"`
}

// Validate checks the amount against the discount type.
func (d Discount) Validate() error {
	if d.Amount < 0 {
		return errs.NewValueIsOutOfRangeError("discount amount", d.Amount, 0, "unbounded")
	}

	switch d.Type {
	case "", DiscountNone, DiscountFixed, DiscountTargetPrice:
		return nil
	case DiscountPercent:
		if d.Amount > 100 {
			return errs.NewValueIsOutOfRangeError("discount percent", d.Amount, 0, 100)
		}
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("discount type is invalid",
			fmt.Errorf("%q is not a known discount type", d.Type))
	}
}

// Customer is the optional buyer attached to an order.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Order is the order record consumed by the status resolver, the action
// authorizer and the financial calculator. Line items are kept outside of it
// because create-mode orders only exist in memory.
//
// Optional values are pointers or zero values with a documented default:
//   - nil timestamps mean "not happened yet"
//   - empty TaxMode is standard
//   - AutoDeductInventoryOnSend defaults to false, the restrictive branch
//   - nil Voucher means no voucher
type Order struct {
	ID       kernel.UUID `json:"id"`
	Code     string      `json:"code"`
	Customer Customer    `json:"customer"`

	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	SentAt      *time.Time `json:"sentAt,omitempty"`
	ReceivedAt  *time.Time `json:"receivedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	TaxMode          TaxMode  `json:"taxMode"`
	PriceIncludesVAT bool     `json:"priceIncludesVat"`
	Discount         Discount `json:"discount"`
	Voucher          *Voucher `json:"voucher,omitempty"`

	AutoDeductInventoryOnSend bool `json:"autoDeductInventoryOnSend"`
}

// Status derives the order status. See ResolveStatus.
func (o Order) Status() Status {
	return ResolveStatus(o)
}

// Validate checks the fields a persisted order must carry. The domain
// services never call it; they classify whatever they are given.
func (o Order) Validate() error {
	var codeErr error
	if o.Code == "" {
		codeErr = errs.NewValueIsRequiredError("code")
	}

	var timestampsErr error
	if o.CancelledAt != nil && o.ReceivedAt != nil {
		timestampsErr = errs.NewValueIsInvalidErrorWithCause("timestamps are invalid",
			errors.New("an order cannot be both received and cancelled"))
	}

	return errors.Join(o.ID.Validate(), codeErr, timestampsErr, o.Discount.Validate())
}

// MarkConfirmed records the kitchen confirmation. An existing ConfirmedAt is kept.
func (o *Order) MarkConfirmed(at time.Time) error {
	if err := o.ensureNotTerminal("confirm"); err != nil {
		return err
	}
	if o.ConfirmedAt == nil {
		o.ConfirmedAt = &at
	}
	return nil
}

// MarkSent records that the order was sent.
func (o *Order) MarkSent(at time.Time) error {
	if err := o.ensureNotTerminal("send"); err != nil {
		return err
	}
	o.SentAt = &at
	return nil
}

// MarkReceived records payment and completes the order.
func (o *Order) MarkReceived(at time.Time) error {
	if err := o.ensureNotTerminal("receive"); err != nil {
		return err
	}
	o.ReceivedAt = &at
	return nil
}

// MarkCancelled cancels the order.
func (o *Order) MarkCancelled(at time.Time) error {
	if err := o.ensureNotTerminal("cancel"); err != nil {
		return err
	}
	o.CancelledAt = &at
	return nil
}

func (o *Order) ensureNotTerminal(transition string) error {
	if status := o.Status(); status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to %s", status, transition),
		)
	}
	return nil
}
