package orderrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository bound to the
// given connection, which is the active transaction when created through a
// unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items", itemOrdering).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves orders in creation order, optionally filtered by
// cancellation state and truncated to the first limit entries.
// Filtering happens in the WHERE clause, so it always precedes truncation.
func (r *GormOrderRepository) GetAll(ctx context.Context, cancelled *bool, limit *int) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Items", itemOrdering).Order("created_at, id")

	if cancelled != nil {
		if *cancelled {
			query = query.Where("status = ?", int(order.Cancelled))
		} else {
			query = query.Where("status <> ?", int(order.Cancelled))
		}
	}

	if limit != nil {
		query = query.Limit(*limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInCreatedStatusBefore retrieves orders still in Created status placed
// before the cutoff.
func (r *GormOrderRepository) GetAllInCreatedStatusBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", itemOrdering).
		Order("created_at, id").
		Find(&dtos, "status = ? AND created_at < ?", int(order.Created), cutoff).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Update saves an existing order, replacing its item rows.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an order and its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", id.Bytes()).Error
}

// itemOrdering keeps preloaded items in their insertion order.
func itemOrdering(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id")
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
