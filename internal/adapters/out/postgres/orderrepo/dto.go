// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in three tables: the order record, its line items and
// the per-bucket details of an applied voucher.
package orderrepo

import (
	"time"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/core/domain/services"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure of an order. The totals are a
// rounded snapshot of the financial summary, refreshed on every write, so that
// reports can aggregate them in SQL.
type OrderDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Code     string      `gorm:"size:64;not null;uniqueIndex"`
	Customer CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`

	CreatedAt   time.Time `gorm:"not null"`
	ConfirmedAt *time.Time
	SentAt      *time.Time
	ReceivedAt  *time.Time `gorm:"index"`
	CancelledAt *time.Time

	TaxMode                   string      `gorm:"size:16"`
	PriceIncludesVAT          bool        `gorm:"column:price_includes_vat"`
	Discount                  DiscountDTO `gorm:"embedded;embeddedPrefix:discount_"`
	HasVoucher                bool
	VoucherCode               string `gorm:"size:64"`
	AutoDeductInventoryOnSend bool

	Totals TotalsDTO `gorm:"embedded"`

	Lines          []LineItemDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	VoucherDetails []VoucherDetailDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is the embedded buyer of an order.
type CustomerDTO struct {
	Name  string `gorm:"size:255"`
	Phone string `gorm:"size:32"`
}

// DiscountDTO is the embedded order-level discount.
type DiscountDTO struct {
	Type          string `gorm:"size:16"`
	Amount        float64
	VATRateTarget int `gorm:"column:vat_rate_target"`
}

// TotalsDTO is the embedded financial summary snapshot, in whole dong.
type TotalsDTO struct {
	GoodsAmount   int64
	TaxAmount     int64
	PayableAmount int64
}

// LineItemDTO represents one line item row. Position keeps the order in
// which lines were added.
type LineItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index;not null"`
	Position           int       `gorm:"not null"`
	ProductID          uuid.UUID `gorm:"type:uuid;not null"`
	Name               string    `gorm:"size:255"`
	Quantity           int
	Price              float64
	VATRate            *int     `gorm:"column:vat_rate"`
	PriceInclVAT       *float64 `gorm:"column:price_incl_vat"`
	ConfirmedToKitchen bool
}

// TableName overrides GORM's default naming convention to use "order_lines".
func (LineItemDTO) TableName() string {
	return "order_lines"
}

// VoucherDetailDTO represents the voucher share of one VAT bucket.
type VoucherDetailDTO struct {
	OrderID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position          int       `gorm:"primaryKey"`
	VATRate           int       `gorm:"column:vat_rate"`
	DiscountBeforeVAT float64   `gorm:"column:discount_before_vat"`
	DiscountAfterVAT  float64   `gorm:"column:discount_after_vat"`
}

// TableName overrides GORM's default naming convention to use "order_voucher_details".
func (VoucherDetailDTO) TableName() string {
	return "order_voucher_details"
}

// fromDomain converts an order and its lines to the database representation,
// including the totals snapshot.
func fromDomain(o *order.Order, items order.LineItems) OrderDTO {
	dto := OrderDTO{
		ID:   o.ID.Bytes(),
		Code: o.Code,
		Customer: CustomerDTO{
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
		},
		CreatedAt:        o.CreatedAt,
		ConfirmedAt:      o.ConfirmedAt,
		SentAt:           o.SentAt,
		ReceivedAt:       o.ReceivedAt,
		CancelledAt:      o.CancelledAt,
		TaxMode:          string(o.TaxMode),
		PriceIncludesVAT: o.PriceIncludesVAT,
		Discount: DiscountDTO{
			Type:          string(o.Discount.Type),
			Amount:        o.Discount.Amount,
			VATRateTarget: int(o.Discount.VATRateTarget),
		},
		AutoDeductInventoryOnSend: o.AutoDeductInventoryOnSend,
		Totals:                    totalsOf(o, items),
		Lines:                     linesFromDomain(o.ID, items),
	}

	if o.Voucher != nil {
		dto.HasVoucher = true
		dto.VoucherCode = o.Voucher.Code
		for i, d := range o.Voucher.Details {
			dto.VoucherDetails = append(dto.VoucherDetails, VoucherDetailDTO{
				OrderID:           dto.ID,
				Position:          i,
				VATRate:           int(d.VATRate),
				DiscountBeforeVAT: d.DiscountBeforeVAT,
				DiscountAfterVAT:  d.DiscountAfterVAT,
			})
		}
	}

	return dto
}

func totalsOf(o *order.Order, items order.LineItems) TotalsDTO {
	summary := services.NewFinancialCalculator().Summarize(*o, items, nil)
	return TotalsDTO{
		GoodsAmount:   kernel.RoundVND(summary.GoodsAmount),
		TaxAmount:     kernel.RoundVND(summary.TaxAmount),
		PayableAmount: kernel.RoundVND(summary.PayableAmount),
	}
}

func linesFromDomain(orderID kernel.UUID, items order.LineItems) []LineItemDTO {
	lines := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		line := LineItemDTO{
			ID:                 item.ID.Bytes(),
			OrderID:            orderID.Bytes(),
			Position:           i,
			ProductID:          item.ProductID.Bytes(),
			Name:               item.Name,
			Quantity:           item.Quantity,
			Price:              item.Price,
			PriceInclVAT:       item.PriceInclVAT,
			ConfirmedToKitchen: item.ConfirmedToKitchen,
		}
		if item.VATRate != nil {
			rate := int(*item.VATRate)
			line.VATRate = &rate
		}
		lines = append(lines, line)
	}
	return lines
}

// toDomain converts a database DTO with preloaded lines and voucher details
// back to the order and its line items.
func toDomain(dto OrderDTO) (*order.Order, order.LineItems, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, nil, err
	}

	o := &order.Order{
		ID:   id,
		Code: dto.Code,
		Customer: order.Customer{
			Name:  dto.Customer.Name,
			Phone: dto.Customer.Phone,
		},
		CreatedAt:        dto.CreatedAt,
		ConfirmedAt:      dto.ConfirmedAt,
		SentAt:           dto.SentAt,
		ReceivedAt:       dto.ReceivedAt,
		CancelledAt:      dto.CancelledAt,
		TaxMode:          order.TaxMode(dto.TaxMode),
		PriceIncludesVAT: dto.PriceIncludesVAT,
		Discount: order.Discount{
			Type:          order.DiscountType(dto.Discount.Type),
			Amount:        dto.Discount.Amount,
			VATRateTarget: kernel.VATRate(dto.Discount.VATRateTarget),
		},
		AutoDeductInventoryOnSend: dto.AutoDeductInventoryOnSend,
	}

	if dto.HasVoucher {
		o.Voucher = &order.Voucher{Code: dto.VoucherCode, Details: make([]order.VoucherDetail, 0, len(dto.VoucherDetails))}
		for _, d := range dto.VoucherDetails {
			o.Voucher.Details = append(o.Voucher.Details, order.VoucherDetail{
				VATRate:           kernel.VATRate(d.VATRate),
				DiscountBeforeVAT: d.DiscountBeforeVAT,
				DiscountAfterVAT:  d.DiscountAfterVAT,
			})
		}
	}

	items, err := linesToDomain(dto.Lines)
	if err != nil {
		return nil, nil, err
	}

	return o, items, nil
}

func linesToDomain(lines []LineItemDTO) (order.LineItems, error) {
	items := make(order.LineItems, 0, len(lines))
	for _, line := range lines {
		id, err := kernel.UUIDFromBytes(line.ID[:])
		if err != nil {
			return nil, err
		}
		productID, err := kernel.UUIDFromBytes(line.ProductID[:])
		if err != nil {
			return nil, err
		}

		item := order.LineItem{
			ID:                 id,
			ProductID:          productID,
			Name:               line.Name,
			Quantity:           line.Quantity,
			Price:              line.Price,
			PriceInclVAT:       line.PriceInclVAT,
			ConfirmedToKitchen: line.ConfirmedToKitchen,
		}
		if line.VATRate != nil {
			rate := kernel.VATRate(*line.VATRate)
			item.VATRate = &rate
		}
		items = append(items, item)
	}
	return items, nil
}
