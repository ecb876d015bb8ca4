package orderrepo

import (
	"context"
	"errors"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its lines and voucher details.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order, items order.LineItems) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, items)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the order record and its voucher details. The totals snapshot
// is recomputed from the stored lines.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	items, err := r.getLines(ctx, aggregate.ID)
	if err != nil {
		return err
	}

	dto := fromDomain(aggregate, items)
	details := dto.VoucherDetails
	dto.Lines, dto.VoucherDetails = nil, nil
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID.String())
	}

	if err = db.Where("order_id = ?", dto.ID).Delete(&VoucherDetailDTO{}).Error; err != nil {
		return err
	}
	if len(details) > 0 {
		return db.Create(&details).Error
	}
	return nil
}

// ReplaceLineItems stores items as the whole line-item collection of the order
// and refreshes the totals snapshot.
func (r *GormOrderRepository) ReplaceLineItems(ctx context.Context, orderID kernel.UUID, items order.LineItems) error {
	o, _, err := r.Get(ctx, orderID)
	if err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err = db.Where("order_id = ?", orderID.Bytes()).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	dto := fromDomain(o, items)
	if len(dto.Lines) > 0 {
		if err = db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	return db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"goods_amount":   dto.Totals.GoodsAmount,
			"tax_amount":     dto.Totals.TaxAmount,
			"payable_amount": dto.Totals.PayableAmount,
		}).Error
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, order.LineItems, error) {
	if err := id.Validate(); err != nil {
		return nil, nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", orderedByPosition).
		Preload("VoucherDetails", orderedByPosition).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, nil, err
	}

	return toDomain(dto)
}

// Delete removes an order with its lines and voucher details.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&VoucherDetailDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

func (r *GormOrderRepository) getLines(ctx context.Context, orderID kernel.UUID) (order.LineItems, error) {
	var lines []LineItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("position").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return linesToDomain(lines)
}

func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
