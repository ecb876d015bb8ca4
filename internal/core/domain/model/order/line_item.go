package order

import (
	"errors"
	"fmt"
	"slices"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/pkg/errs"
)

// LineItem is one product entry of an order. Price is the pre-tax unit price.
// VATRate and PriceInclVAT are optional in the API record: a missing rate is
// 0% and a missing VAT-inclusive price is derived from Price.
type LineItem struct {
	ID                 kernel.UUID     `json:"id"`
	ProductID          kernel.UUID     `json:"productId"`
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"`
	Price              float64         `json:"price"`
	VATRate            *kernel.VATRate `json:"vatRate,omitempty"`
	PriceInclVAT       *float64        `json:"priceInclVat,omitempty"`
	ConfirmedToKitchen bool            `json:"isConfirmedToKitchen"`
}

// Rate returns the line's VAT rate, 0% when absent.
func (l LineItem) Rate() kernel.VATRate {
	if l.VATRate == nil {
		return kernel.VAT0
	}
	return *l.VATRate
}

// PreTaxTotal is Price × Quantity.
func (l LineItem) PreTaxTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// UnitPriceInclVAT returns the VAT-inclusive unit price under the given tax mode.
// Exempt merchants charge the pre-tax price. Otherwise a supplied PriceInclVAT
// wins; a missing one is derived from a known rate, and rates outside the
// buckets add nothing.
func (l LineItem) UnitPriceInclVAT(mode TaxMode) float64 {
	if mode.IsExempt() {
		return l.Price
	}
	if l.PriceInclVAT != nil {
		return *l.PriceInclVAT
	}
	rate := l.Rate()
	if !rate.IsKnown() {
		return l.Price
	}
	return rate.Gross(l.Price)
}

// PostTaxTotal is UnitPriceInclVAT × Quantity.
func (l LineItem) PostTaxTotal(mode TaxMode) float64 {
	return l.UnitPriceInclVAT(mode) * float64(l.Quantity)
}

// Validate checks identifiers and non-negative amounts.
func (l LineItem) Validate() error {
	var quantityErr, priceErr error
	if l.Quantity < 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", l.Quantity, 0, "unbounded")
	}
	if l.Price < 0 {
		priceErr = errs.NewValueIsOutOfRangeError("price", l.Price, 0, "unbounded")
	}
	return errors.Join(l.ID.Validate(), l.ProductID.Validate(), quantityErr, priceErr)
}

// QuantityMode selects how ChangeQuantity interprets its value.
type QuantityMode string

const (
	QuantityAbsolute QuantityMode = "absolute"
	QuantityDelta    QuantityMode = "delta"
)

// LineItems is the line-item collection of one order. Its mutations are pure:
// they return a new collection and leave the receiver untouched, so callers can
// send the result to the order API and discard it if the call fails.
type LineItems []LineItem

// Find returns the line with the given id.
func (items LineItems) Find(id kernel.UUID) (LineItem, bool) {
	if i := items.indexOf(id); i >= 0 {
		return items[i], true
	}
	return LineItem{}, false
}

// HasUnconfirmed reports whether any line still has to go to the kitchen.
func (items LineItems) HasUnconfirmed() bool {
	return slices.ContainsFunc(items, func(l LineItem) bool {
		return !l.ConfirmedToKitchen
	})
}

// Add appends a new line. The line must be valid, have a positive quantity and
// an id not already on the order.
func (items LineItems) Add(item LineItem) (LineItems, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if item.Quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, "unbounded")
	}
	if items.indexOf(item.ID) >= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("line item is invalid",
			fmt.Errorf("line item %s is already on the order", item.ID))
	}

	return append(slices.Clone(items), item), nil
}

// ChangeQuantity sets (QuantityAbsolute) or adjusts (QuantityDelta) the quantity
// of a line. A resulting quantity of zero or less removes the line, exactly as
// Remove would.
func (items LineItems) ChangeQuantity(id kernel.UUID, value int, mode QuantityMode) (LineItems, error) {
	i := items.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("lineItemId", id.String())
	}

	var quantity int
	switch mode {
	case QuantityAbsolute:
		quantity = value
	case QuantityDelta:
		quantity = items[i].Quantity + value
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity mode is invalid",
			fmt.Errorf("%q is not absolute or delta", mode))
	}

	if quantity <= 0 {
		return items.Remove(id)
	}

	changed := slices.Clone(items)
	changed[i].Quantity = quantity
	return changed, nil
}

// Remove drops the line with the given id.
func (items LineItems) Remove(id kernel.UUID) (LineItems, error) {
	i := items.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("lineItemId", id.String())
	}
	return slices.Delete(slices.Clone(items), i, i+1), nil
}

// MarkConfirmedToKitchen flags every line as sent to the kitchen.
func (items LineItems) MarkConfirmedToKitchen() LineItems {
	confirmed := slices.Clone(items)
	for i := range confirmed {
		confirmed[i].ConfirmedToKitchen = true
	}
	return confirmed
}

func (items LineItems) indexOf(id kernel.UUID) int {
	return slices.IndexFunc(items, func(l LineItem) bool {
		return l.ID.IsEqual(id)
	})
}
