package http

import (
	"time"

	"orders/internal/core/domain/model/order"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Item is the wire representation of one order line item.
type Item struct {
	Product  string `json:"product"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Order is the wire representation of an order.
type Order struct {
	ID        openapi_types.UUID `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Status    string             `json:"status"`
	Items     []Item             `json:"items"`
}

// Orders is the envelope for list responses.
type Orders struct {
	Orders []Order `json:"orders"`
}

// CreateOrderRequest is the request body for placing or updating an order.
type CreateOrderRequest struct {
	Items []Item `json:"items"`
}

// Error is the wire representation of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fromDomainOrder maps an order aggregate to its wire representation.
func fromDomainOrder(aggregate *order.Order) Order {
	domainItems := aggregate.Items()
	items := make([]Item, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, Item{
			Product:  item.Product(),
			Size:     item.Size().String(),
			Quantity: item.Quantity(),
		})
	}

	return Order{
		ID:        aggregate.ID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
		Status:    aggregate.Status().String(),
		Items:     items,
	}
}

// fromDomainOrders maps a list of order aggregates to the list envelope.
func fromDomainOrders(aggregates []*order.Order) Orders {
	orders := make([]Order, 0, len(aggregates))
	for _, aggregate := range aggregates {
		orders = append(orders, fromDomainOrder(aggregate))
	}
	return Orders{Orders: orders}
}

// toDomainItems maps wire items to domain value objects, validating each one.
func toDomainItems(items []Item) ([]order.Item, error) {
	domainItems := make([]order.Item, 0, len(items))
	for _, item := range items {
		size, err := order.SizeFromString(item.Size)
		if err != nil {
			return nil, err
		}

		domainItem, err := order.NewItem(item.Product, size, item.Quantity)
		if err != nil {
			return nil, err
		}
		domainItems = append(domainItems, domainItem)
	}

	return domainItems, nil
}
