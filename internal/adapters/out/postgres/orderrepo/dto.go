// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in a child table and are replaced wholesale on update.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	Status    int
	Items     []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line item. The auto-incremented
// primary key preserves the insertion order of items within an order.
type ItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	Product  string
	Size     int
	Quantity int
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation, including its item rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			Product:  item.Product(),
			Size:     int(item.Size()),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
		Status:    int(aggregate.Status()),
		Items:     itemDTOs,
	}
}

// toDomain converts a database DTO back into an order domain aggregate
// using RestoreOrder, so the persisted status is kept as is.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Product, order.Size(itemDTO.Size), itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.CreatedAt, order.Status(dto.Status), items)
}
